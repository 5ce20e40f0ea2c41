package service

import "context"

// ITrackerService posts a purchase conversion to the analytics platform.
type ITrackerService interface {
	TrackConversion(ctx context.Context, conv Conversion) error
}

// Conversion is one confirmed purchase with its campaign attribution. The five
// UTM fields are captured at checkout time and may all be absent.
type Conversion struct {
	OrderID     string
	Value       float64
	Currency    string
	UTMSource   *string
	UTMMedium   *string
	UTMCampaign *string
	UTMTerm     *string
	UTMContent  *string
}
