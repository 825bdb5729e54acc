package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/jrebel-license-server/models"
)

// Query builders for the "licenses" table. MySQL uses ? placeholders,
// squirrel's default, so no PlaceholderFormat override is needed.

func insertLicenseQuery(license models.License) sq.InsertBuilder {
	return sq.Insert("licenses").
		Columns("guid", "note", "created_at").
		Values(license.GUID, license.Note, license.CreatedAt)
}

func listLicensesQuery(filter models.LicenseFilter) sq.SelectBuilder {
	query := sq.Select("id", "guid", "note", "created_at").
		From("licenses").
		OrderBy("created_at DESC", "id DESC")

	if filter.Note != "" {
		query = query.Where(sq.Like{"note": "%" + filter.Note + "%"})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query
}

func findLicenseByGUIDQuery(guid string) sq.SelectBuilder {
	return sq.Select("id", "guid", "note", "created_at").
		From("licenses").
		Where(sq.Eq{"guid": guid})
}

func deleteLicenseQuery(guid string) sq.DeleteBuilder {
	return sq.Delete("licenses").
		Where(sq.Eq{"guid": guid})
}

func countLicensesQuery() sq.SelectBuilder {
	return sq.Select("COUNT(*)").From("licenses")
}
