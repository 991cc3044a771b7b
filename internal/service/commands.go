package service

type SearchQuery struct {
	Country    string
	AreaCode   string
	Pattern    string
	PostalCode string
}

type ListOwnedQuery struct {
	Limit int
}

type CheckSMSQuery struct {
	PhoneNumber string
	Limit       int
}
