package helpers

import (
	"github.com/contaflow/backoffice/internal/db"
	"github.com/contaflow/backoffice/types/business"
)

// ToActivityType converts a database activity type row to the business model.
func ToActivityType(row db.ActivityType) business.ActivityType {
	return business.ActivityType{
		ID:                   row.ID,
		Code:                 row.Code,
		Name:                 row.Name,
		AppliesToIndividual:  row.AppliesToIndividual,
		AppliesToLegalEntity: row.AppliesToLegalEntity,
		Active:               row.Active,
	}
}

// ToTaxRegime converts a database tax regime row to the business model.
func ToTaxRegime(row db.TaxRegime) business.TaxRegime {
	return business.TaxRegime{
		ID:                   row.ID,
		Code:                 row.Code,
		Name:                 row.Name,
		Description:          row.Description.String,
		AppliesToIndividual:  row.AppliesToIndividual,
		AppliesToLegalEntity: row.AppliesToLegalEntity,
		Active:               row.Active,
	}
}

// ToRevenueBracket converts a database revenue bracket row to the business
// model. A NULL upper bound marks the open-ended top bracket.
func ToRevenueBracket(row db.RevenueBracket) business.RevenueBracket {
	bracket := business.RevenueBracket{
		ID:              row.ID,
		RegimeID:        row.RegimeID,
		LowerBoundCents: row.LowerBoundCents,
		RatePercent:     row.RatePercent,
		Active:          row.Active,
	}
	if row.UpperBoundCents.Valid {
		upper := row.UpperBoundCents.Int64
		bracket.UpperBoundCents = &upper
	}
	return bracket
}

// ToCatalogService converts a database service row to the business model.
func ToCatalogService(row db.CatalogService) business.CatalogService {
	return business.CatalogService{
		ID:             row.ID,
		Name:           row.Name,
		Category:       row.Category,
		UnitPriceCents: row.UnitPriceCents,
		Active:         row.Active,
	}
}

// ToClient converts a database client row and its legal entities to the
// business model.
func ToClient(row db.Client, entityRows []db.LegalEntity) business.Client {
	entities := make([]business.LegalEntity, len(entityRows))
	for i, e := range entityRows {
		entities[i] = business.LegalEntity{
			ID:        e.ID,
			TaxID:     e.TaxID,
			LegalName: e.LegalName,
		}
	}
	return business.Client{
		ID:               row.ID,
		Name:             row.Name,
		PersonType:       business.PersonType(row.PersonType),
		OpeningNewEntity: row.OpeningNewEntity,
		LegalEntities:    entities,
	}
}
