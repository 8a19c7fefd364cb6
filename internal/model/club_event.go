package model

type ClubEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Club        string `json:"club"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
}
