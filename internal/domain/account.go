package domain

// Profile é repassado exatamente como a API devolve o campo data do endpoint account.
type Profile map[string]any

type Balance struct {
	MainBalance      float64 `json:"mainBalance"`
	HoldAdv          float64 `json:"holdAdv"`
	AvailableBalance float64 `json:"availableBalance"`
	Withdrawal       float64 `json:"withdrawal"`
	Withdrawn        float64 `json:"withdrawn"`
}

type TrafficChannel struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
