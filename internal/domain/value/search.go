package value

import "net/url"

// SearchQuery — параметры формы flight-search.
type SearchQuery struct {
	From string `validate:"required"`
	To   string `validate:"required"`
	Date string `validate:"required,datetime=2006-01-02"`
}

func (q SearchQuery) IsZero() bool {
	return q.From == "" && q.To == "" && q.Date == ""
}

func (q SearchQuery) Values() url.Values {
	return url.Values{
		"from": []string{q.From},
		"to":   []string{q.To},
		"date": []string{q.Date},
	}
}
