package domain

// Response bodies and display fallbacks stay in pt-BR: they are part of the
// checkout's public contract with the gateway and with customers.
const (
	MsgMethodNotAllowed      = "Método não permitido"
	MsgWebhookProcessed      = "Webhook processado com sucesso"
	MsgWebhookFailed         = "Erro ao processar webhook"
	MsgInternalError         = "Erro interno do servidor"
	MsgOrderIDRequired       = "orderId é obrigatório."
	MsgOrderNotFound         = "Pedido não encontrado."
	MsgPaymentFinalized      = "Pagamento finalizado com sucesso."
	MsgPaymentFinalizeFailed = "Erro ao finalizar pagamento."
	MsgOrderCreateFailed     = "Erro ao criar pedido."
	MsgInvalidRequest        = "Requisição inválida."
)

const (
	FallbackCustomerName  = "Cliente"
	FallbackProductName   = "Produto"
	FallbackPaymentMethod = "Desconhecido"
)
