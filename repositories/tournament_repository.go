package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/acm-club/esports-backend/models"
)

var ErrTournamentNotFound = errors.New("tournament not found")

// TournamentRepository is read-only: the tournament catalog is populated
// outside this service.
type TournamentRepository interface {
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	List(ctx context.Context, filter models.ListFilter) ([]models.Tournament, error)
	Count(ctx context.Context) (int, error)
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	query := `SELECT id, name, type, created_at FROM tournaments WHERE id = $1`

	t := &models.Tournament{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.Type, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *postgresTournamentRepository) List(ctx context.Context, filter models.ListFilter) ([]models.Tournament, error) {
	query := `SELECT id, name, type, created_at FROM tournaments`
	args := []interface{}{}

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		query += ` WHERE name LIKE $1 OR type LIKE $1`
	}
	query, args = appendListClauses(query, filter.OrderBy, filter.Take, filter.Skip, args)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if err := rows.Scan(&t.ID, &t.Name, &t.Type, &t.CreatedAt); err != nil {
			return nil, err
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, rows.Err()
}

func (r *postgresTournamentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tournaments`).Scan(&count)
	return count, err
}
