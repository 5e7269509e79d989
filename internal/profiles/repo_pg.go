package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Saubhagya1707/crying-tailor/internal/shared/storage/db"
	"github.com/Saubhagya1707/crying-tailor/resume/model"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

var sectionTables = []string{"education", "experience", "skills", "projects", "certifications"}

// Get loads the profile row and every section ordered by order_index.
func (r *PGRepo) Get(ctx context.Context, userID string) (model.Resume, error) {
	var out model.Resume
	var fullName, phone, summary, location, linkedin, website sql.NullString
	err := r.DB.QueryRowContext(ctx, `
SELECT full_name, phone, summary, location, linkedin_url, website_url
FROM profiles
WHERE user_id = $1`, userID).Scan(&fullName, &phone, &summary, &location, &linkedin, &website)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Resume{}, ErrNotFound
		}
		return model.Resume{}, err
	}
	out.Profile = model.Profile{
		FullName:    fullName.String,
		Phone:       phone.String,
		Summary:     summary.String,
		Location:    location.String,
		LinkedInURL: linkedin.String,
		WebsiteURL:  website.String,
	}

	if out.Education, err = r.education(ctx, userID); err != nil {
		return model.Resume{}, err
	}
	if out.Experience, err = r.experience(ctx, userID); err != nil {
		return model.Resume{}, err
	}
	if out.Skills, err = r.skills(ctx, userID); err != nil {
		return model.Resume{}, err
	}
	if out.Projects, err = r.projects(ctx, userID); err != nil {
		return model.Resume{}, err
	}
	if out.Certifications, err = r.certifications(ctx, userID); err != nil {
		return model.Resume{}, err
	}
	return out.Sorted(), nil
}

// Exists reports whether a profile row exists.
func (r *PGRepo) Exists(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM profiles WHERE user_id = $1)`, userID).Scan(&exists)
	return exists, err
}

// Replace upserts the profile row and rewrites all five sections in one
// transaction.
func (r *PGRepo) Replace(ctx context.Context, userID string, res model.Resume) error {
	res = res.Reindex()
	return db.WithTx(ctx, r.DB, func(ctx context.Context, tx db.DBTX) error {
		p := res.Profile
		now := time.Now().UTC()
		if _, err := tx.ExecContext(ctx, `
INSERT INTO profiles (user_id, full_name, phone, summary, location, linkedin_url, website_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
ON CONFLICT (user_id) DO UPDATE SET
    full_name = EXCLUDED.full_name,
    phone = EXCLUDED.phone,
    summary = EXCLUDED.summary,
    location = EXCLUDED.location,
    linkedin_url = EXCLUDED.linkedin_url,
    website_url = EXCLUDED.website_url,
    updated_at = EXCLUDED.updated_at`,
			userID, p.FullName, p.Phone, p.Summary, p.Location, p.LinkedInURL, p.WebsiteURL, now); err != nil {
			return fmt.Errorf("upsert profile: %w", err)
		}

		if err := deleteSections(ctx, tx, userID); err != nil {
			return err
		}

		for _, e := range res.Education {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO education (id, user_id, institution, degree, field, start_date, end_date, description, order_index)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				uuid.NewString(), userID, e.Institution, e.Degree, e.Field, e.StartDate, e.EndDate, e.Description, e.OrderIndex); err != nil {
				return fmt.Errorf("insert education: %w", err)
			}
		}
		for _, e := range res.Experience {
			bullets, err := jsonArray(e.BulletPoints)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `
INSERT INTO experience (id, user_id, company, role, location, start_date, end_date, description, bullet_points, order_index)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10)`,
				uuid.NewString(), userID, e.Company, e.Role, e.Location, e.StartDate, e.EndDate, e.Description, bullets, e.OrderIndex); err != nil {
				return fmt.Errorf("insert experience: %w", err)
			}
		}
		for _, s := range res.Skills {
			items, err := jsonArray(s.Items)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `
INSERT INTO skills (id, user_id, category, items, order_index)
VALUES ($1, $2, $3, $4::jsonb, $5)`,
				uuid.NewString(), userID, s.Category, items, s.OrderIndex); err != nil {
				return fmt.Errorf("insert skill: %w", err)
			}
		}
		for _, pr := range res.Projects {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO projects (id, user_id, name, description, url, date, order_index)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				uuid.NewString(), userID, pr.Name, pr.Description, pr.URL, pr.Date, pr.OrderIndex); err != nil {
				return fmt.Errorf("insert project: %w", err)
			}
		}
		for _, c := range res.Certifications {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO certifications (id, user_id, name, issuer, date, url, order_index)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				uuid.NewString(), userID, c.Name, c.Issuer, c.Date, c.URL, c.OrderIndex); err != nil {
				return fmt.Errorf("insert certification: %w", err)
			}
		}
		return nil
	})
}

// DeleteAll removes the profile row and all sections using the given
// connection or transaction.
func DeleteAll(ctx context.Context, tx db.DBTX, userID string) error {
	if err := deleteSections(ctx, tx, userID); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	return err
}

func deleteSections(ctx context.Context, tx db.DBTX, userID string) error {
	for _, table := range sectionTables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE user_id = $1", userID); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func (r *PGRepo) education(ctx context.Context, userID string) ([]model.Education, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT institution, degree, field, start_date, end_date, description, order_index
FROM education WHERE user_id = $1 ORDER BY order_index`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Education{}
	for rows.Next() {
		var e model.Education
		var inst, deg, field, start, end, desc sql.NullString
		if err := rows.Scan(&inst, &deg, &field, &start, &end, &desc, &e.OrderIndex); err != nil {
			return nil, err
		}
		e.Institution, e.Degree, e.Field = inst.String, deg.String, field.String
		e.StartDate, e.EndDate, e.Description = start.String, end.String, desc.String
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PGRepo) experience(ctx context.Context, userID string) ([]model.Experience, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT company, role, location, start_date, end_date, description, bullet_points, order_index
FROM experience WHERE user_id = $1 ORDER BY order_index`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Experience{}
	for rows.Next() {
		var e model.Experience
		var company, role, loc, start, end, desc sql.NullString
		var bullets []byte
		if err := rows.Scan(&company, &role, &loc, &start, &end, &desc, &bullets, &e.OrderIndex); err != nil {
			return nil, err
		}
		e.Company, e.Role, e.Location = company.String, role.String, loc.String
		e.StartDate, e.EndDate, e.Description = start.String, end.String, desc.String
		if e.BulletPoints, err = parseArray(bullets); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PGRepo) skills(ctx context.Context, userID string) ([]model.Skill, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT category, items, order_index
FROM skills WHERE user_id = $1 ORDER BY order_index`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Skill{}
	for rows.Next() {
		var s model.Skill
		var category sql.NullString
		var items []byte
		if err := rows.Scan(&category, &items, &s.OrderIndex); err != nil {
			return nil, err
		}
		s.Category = category.String
		if s.Items, err = parseArray(items); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PGRepo) projects(ctx context.Context, userID string) ([]model.Project, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT name, description, url, date, order_index
FROM projects WHERE user_id = $1 ORDER BY order_index`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Project{}
	for rows.Next() {
		var p model.Project
		var name, desc, url, date sql.NullString
		if err := rows.Scan(&name, &desc, &url, &date, &p.OrderIndex); err != nil {
			return nil, err
		}
		p.Name, p.Description, p.URL, p.Date = name.String, desc.String, url.String, date.String
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PGRepo) certifications(ctx context.Context, userID string) ([]model.Certification, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT name, issuer, date, url, order_index
FROM certifications WHERE user_id = $1 ORDER BY order_index`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Certification{}
	for rows.Next() {
		var c model.Certification
		var name, issuer, date, url sql.NullString
		if err := rows.Scan(&name, &issuer, &date, &url, &c.OrderIndex); err != nil {
			return nil, err
		}
		c.Name, c.Issuer, c.Date, c.URL = name.String, issuer.String, date.String, url.String
		out = append(out, c)
	}
	return out, rows.Err()
}

func jsonArray(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func parseArray(raw []byte) ([]string, error) {
	out := []string{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode jsonb array: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

var _ Repo = (*PGRepo)(nil)
