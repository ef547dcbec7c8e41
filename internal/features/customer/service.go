package customer

import (
	"errors"
	"strings"
)

// ErrCustomerNotFound is returned by lookups for an unknown customer id.
var ErrCustomerNotFound = errors.New("customer not found")

const maxSearchResults = 10

type CustomerService interface {
	All() []Customer
	GetByID(id int) (*Customer, error)
	Search(query string) []Customer
}

type CustomerServiceImpl struct {
	roster []Customer
}

func NewCustomerService() CustomerService {
	return &CustomerServiceImpl{roster: Roster}
}

func (s *CustomerServiceImpl) All() []Customer {
	out := make([]Customer, len(s.roster))
	copy(out, s.roster)
	return out
}

func (s *CustomerServiceImpl) GetByID(id int) (*Customer, error) {
	for i := range s.roster {
		if s.roster[i].ID == id {
			c := s.roster[i]
			return &c, nil
		}
	}
	return nil, ErrCustomerNotFound
}

// Search matches case-insensitively against name or phone (phone compared
// with surrounding whitespace trimmed). Queries shorter than 2 characters
// return nothing; results keep roster order and are capped at 10.
func (s *CustomerServiceImpl) Search(query string) []Customer {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []Customer{}
	}

	q := strings.ToLower(query)
	results := []Customer{}
	for _, c := range s.roster {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.TrimSpace(c.Phone), q) {
			results = append(results, c)
			if len(results) >= maxSearchResults {
				break
			}
		}
	}
	return results
}
