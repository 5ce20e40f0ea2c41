package fulfillment

import "fmt"

const accessEmailSubject = "✅ Acesso ao seu produto foi liberado!"

func accessEmailHTML(name, email, password, deliveryLink string) string {
	return fmt.Sprintf(`<h2>Olá, %s!</h2>
<p>Seu pagamento foi confirmado com sucesso.</p>
<p>Acesse seu produto clicando no botão abaixo:</p>
<p style="margin-top:16px;">
  <a href="%s" target="_blank" style="padding: 12px 24px; background-color: #22c55e; color: white; text-decoration: none; border-radius: 6px;">
    Acessar agora
  </a>
</p>
<p style="margin-top: 24px;"><strong>Usuário:</strong> %s<br><strong>Senha:</strong> %s</p>
<p style="margin-top: 24px;">Qualquer dúvida, estamos à disposição no WhatsApp!</p>`,
		name, deliveryLink, email, password)
}
