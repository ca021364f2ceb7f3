package domain

import "strconv"

// Offer mantém todos os campos do registro original do endpoint offers.
type Offer map[string]any

// ID devolve o identificador do offer, aceitando número ou string numérica.
func (o Offer) ID() int {
	switch v := o["id"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		id, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return id
	default:
		return 0
	}
}

type OfferQuery struct {
	OfferID   int   // enviado como id
	OfferIDs  []int // enviado como ids (array JSON); tem precedência sobre OfferID
	ChannelID int   // quando informado usa offers/connectedPlatforms
}

type OfferLink struct {
	OfferID   int    `json:"offerId"`
	ChannelID int    `json:"channelId"`
	URL       string `json:"url"`
}
