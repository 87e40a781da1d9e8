package chatbot

type faqEntry struct {
	keyword string
	answer  string
}

// faqTable is scanned in order for the general intent; the first keyword
// contained in the message wins.
var faqTable = []faqEntry{
	{"warranty", "All parts come with a 90-day warranty covering manufacturing defects. Keep your order number handy if you ever need to claim it."},
	{"hours", "Our support team is available Monday through Friday, 9am to 6pm EST."},
	{"location", "We ship from our warehouse in Wilmington, Delaware, and deliver across the US and internationally."},
	{"payment", "We accept Visa, Mastercard, American Express, PayPal and Apple Pay."},
	{"wholesale", "We offer wholesale pricing for repair shops. Email wholesale@nexustechhub.com with the parts you stock and we'll send a quote."},
	{"bulk", "Bulk discounts start at 5 units per part. For larger volumes, ask about our wholesale program."},
	{"install", "Every product page links to a step-by-step installation guide, and our support articles cover the most common repairs."},
	{"quality", "Parts are graded as OEM pull, premium aftermarket, or standard aftermarket. The grade is listed on each product page."},
	{"compatible", "Check the compatibility list on the product page, or tell me your device model and I'll help you find the right part."},
	{"cancel", "Orders can be cancelled free of charge any time before they ship. Contact us as soon as possible with your order number."},
	{"track", "You can track your order from the Orders page in your account, or just tell me your order number here."},
	{"contact", "You can reach us at support@nexustechhub.com or +1 (800) 555-0199, Monday through Friday 9am to 6pm EST."},
}
