package model

type Service struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Price       int    `json:"price"`
}

type Package struct {
	Id       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Duration string   `json:"duration"`
	Images   string   `json:"images"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular"`
}

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type AddOn struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
