package business

import (
	"fmt"

	"github.com/google/uuid"
)

// PersonType distinguishes individual clients from legal entities.
type PersonType string

const (
	PersonIndividual  PersonType = "individual"
	PersonLegalEntity PersonType = "legal_entity"
)

// LegalEntity is a registered company owned by a client.
type LegalEntity struct {
	ID        uuid.UUID `json:"id"`
	TaxID     string    `json:"tax_id"`
	LegalName string    `json:"legal_name"`
}

// Client is the party a proposal is addressed to.
type Client struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	PersonType    PersonType    `json:"person_type"`
	LegalEntities []LegalEntity `json:"legal_entities,omitempty"`

	// OpeningNewEntity marks a client contracting the firm to open
	// a new legal entity; it drives the company-opening fee.
	OpeningNewEntity bool `json:"opening_new_entity"`
}

// Validate enforces the person-type invariant: a legal-entity client must
// carry at least one legal entity unless the engagement is to open one.
func (c Client) Validate() error {
	if c.PersonType == PersonLegalEntity && len(c.LegalEntities) == 0 && !c.OpeningNewEntity {
		return fmt.Errorf("legal-entity client %s has no legal entities", c.ID)
	}
	return nil
}
