package profiles

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Saubhagya1707/crying-tailor/resume/model"
)

func TestPGRepoReplaceRunsInOneTransaction(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer conn.Close()
	repo := &PGRepo{DB: conn}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO profiles")).
		WithArgs("u", "Jane", "", "", "", "", "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	for _, table := range sectionTables {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM " + table + " WHERE user_id = $1")).
			WithArgs("u").
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO experience")).
		WithArgs(sqlmock.AnyArg(), "u", "Acme", "Engineer", "", "", "", "", `["Built X"]`, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO skills")).
		WithArgs(sqlmock.AnyArg(), "u", "Languages", `[]`, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.Replace(context.Background(), "u", model.Resume{
		Profile:    model.Profile{FullName: "Jane"},
		Experience: []model.Experience{{Company: "Acme", Role: "Engineer", BulletPoints: []string{"Built X"}, OrderIndex: 7}},
		Skills:     []model.Skill{{Category: "Languages"}},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoReplaceRollsBackOnInsertFailure(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer conn.Close()
	repo := &PGRepo{DB: conn}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO profiles")).WillReturnResult(sqlmock.NewResult(0, 1))
	for _, table := range sectionTables {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM " + table)).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO projects")).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err = repo.Replace(context.Background(), "u", model.Resume{Projects: []model.Project{{Name: "p"}}})
	if err == nil {
		t.Fatalf("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetMissingProfile(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer conn.Close()
	repo := &PGRepo{DB: conn}

	mock.ExpectQuery(regexp.QuoteMeta("FROM profiles")).
		WithArgs("u").
		WillReturnRows(sqlmock.NewRows([]string{"full_name", "phone", "summary", "location", "linkedin_url", "website_url"}))

	if _, err := repo.Get(context.Background(), "u"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoGetDecodesSections(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer conn.Close()
	repo := &PGRepo{DB: conn}

	mock.ExpectQuery(regexp.QuoteMeta("FROM profiles")).WithArgs("u").
		WillReturnRows(sqlmock.NewRows([]string{"full_name", "phone", "summary", "location", "linkedin_url", "website_url"}).
			AddRow("Jane", nil, nil, "Berlin", nil, nil))
	mock.ExpectQuery(regexp.QuoteMeta("FROM education")).WithArgs("u").
		WillReturnRows(sqlmock.NewRows([]string{"institution", "degree", "field", "start_date", "end_date", "description", "order_index"}))
	mock.ExpectQuery(regexp.QuoteMeta("FROM experience")).WithArgs("u").
		WillReturnRows(sqlmock.NewRows([]string{"company", "role", "location", "start_date", "end_date", "description", "bullet_points", "order_index"}).
			AddRow("Acme", "Engineer", nil, "2019", nil, nil, []byte(`["Built X","Shipped Y"]`), 0))
	mock.ExpectQuery(regexp.QuoteMeta("FROM skills")).WithArgs("u").
		WillReturnRows(sqlmock.NewRows([]string{"category", "items", "order_index"}).
			AddRow(nil, []byte(`["Go"]`), 0))
	mock.ExpectQuery(regexp.QuoteMeta("FROM projects")).WithArgs("u").
		WillReturnRows(sqlmock.NewRows([]string{"name", "description", "url", "date", "order_index"}))
	mock.ExpectQuery(regexp.QuoteMeta("FROM certifications")).WithArgs("u").
		WillReturnRows(sqlmock.NewRows([]string{"name", "issuer", "date", "url", "order_index"}))

	got, err := repo.Get(context.Background(), "u")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Profile.FullName != "Jane" || got.Profile.Location != "Berlin" {
		t.Fatalf("unexpected profile %+v", got.Profile)
	}
	if len(got.Experience) != 1 || len(got.Experience[0].BulletPoints) != 2 {
		t.Fatalf("unexpected experience %+v", got.Experience)
	}
	if len(got.Skills) != 1 || got.Skills[0].Items[0] != "Go" {
		t.Fatalf("unexpected skills %+v", got.Skills)
	}
	if got.Projects == nil || got.Education == nil {
		t.Fatalf("expected empty, non-nil sections")
	}
}
