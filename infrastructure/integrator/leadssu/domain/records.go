package leadssudomain

// Balance action account/balance
type Balance struct {
	Balance          Number `json:"balance"`
	Hold             Number `json:"hold"`
	AvailableBalance Number `json:"available_balance"`
	Ordered          Number `json:"ordered"`
	Paid             Number `json:"paid"`
}

// Platform action platforms
type Platform struct {
	ID   Number `json:"id"`
	Name Text   `json:"name"`
}

// Conversion action conversions
type Conversion struct {
	ID      Number `json:"id"`
	OfferID Number `json:"offer_id"`
	Status  Text   `json:"status"`
	Payout  Number `json:"payout"`
	AffSub1 Text   `json:"aff_sub1"`
	AffSub2 Text   `json:"aff_sub2"`
	Created Text   `json:"created"`
}

// SummaryRow action reports/summary
type SummaryRow struct {
	OfferID             Number `json:"offer_id"`
	OfferName           Text   `json:"offer_name"`
	Clicks              Number `json:"clicks"`
	Conversions         Number `json:"conversions"`
	ConversionsRejected Number `json:"conversions_rejected"`
	ConversionsPending  Number `json:"conversions_pending"`
	ConversionsApproved Number `json:"conversions_approved"`
	PendingPayout       Number `json:"pending_payout"`
	Payout              Number `json:"payout"`
	RejectedPayout      Number `json:"rejected_payout"`
}
