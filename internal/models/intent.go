package models

// Intent is the coarse category of user need inferred from message text.
type Intent string

const (
	IntentProductInquiry   Intent = "product_inquiry"
	IntentOrderStatus      Intent = "order_status"
	IntentReturnRequest    Intent = "return_request"
	IntentTechnicalSupport Intent = "technical_support"
	IntentShippingInfo     Intent = "shipping_info"
	IntentPricingInfo      Intent = "pricing_info"
	IntentContactHuman     Intent = "contact_human"
	IntentGreeting         Intent = "greeting"
	IntentThanks           Intent = "thanks"
	IntentGeneral          Intent = "general"
)
