package sentence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/prateekpranveer/author-s-dict/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/sentence/mock_repository.go -package=mock_sentence

// insertChunkSize keeps multi-row inserts under SQLite's bound-parameter limit.
const insertChunkSize = 200

// likeEscape is the escape character used for LIKE patterns.
const likeEscape = "!"

// Repository defines operations on stored quotations.
type Repository interface {
	// InsertMany stores the well-formed candidates and returns how many
	// candidates were submitted, which is not necessarily how many were stored.
	InsertMany(ctx context.Context, candidates []json.RawMessage) (int, error)
	// Search returns the records whose text contains word, ignoring case, in insertion order.
	Search(ctx context.Context, word string) ([]Record, error)
	// Authors returns every author with the number of their records.
	Authors(ctx context.Context) ([]AuthorCount, error)
}

// DBRepository implements Repository on a SQL database.
type DBRepository struct {
	db      *sqlx.DB
	builder sq.StatementBuilderType
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	var placeholder sq.PlaceholderFormat = sq.Question
	if sqlx.BindType(db.DriverName()) == sqlx.DOLLAR {
		placeholder = sq.Dollar
	}
	return &DBRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

// InsertMany inserts the well-formed candidates in a single transaction.
func (r *DBRepository) InsertMany(ctx context.Context, candidates []json.RawMessage) (int, error) {
	records := ParseCandidates(candidates)
	if len(records) == 0 {
		return len(candidates), nil
	}

	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for start := 0; start < len(records); start += insertChunkSize {
			end := min(start+insertChunkSize, len(records))

			insert := r.builder.Insert("sentences").Columns("text", "author", "book")
			for _, record := range records[start:end] {
				insert = insert.Values(record.Text, record.Author, record.Book)
			}
			query, args, err := insert.ToSql()
			if err != nil {
				return fmt.Errorf("insert.ToSql() > %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("tx.ExecContext(insert sentences) > %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(candidates), nil
}

// Search scans the sentences table with a case-insensitive LIKE.
// Both sides are folded by the database's LOWER so they always agree.
// LIKE wildcards in word match literally.
func (r *DBRepository) Search(ctx context.Context, word string) ([]Record, error) {
	pattern := "%" + escapeLike(word) + "%"
	query, args, err := r.builder.
		Select("id", "text", "author", "book").
		From("sentences").
		Where(sq.Expr("LOWER(text) LIKE LOWER(?) ESCAPE '"+likeEscape+"'", pattern)).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("select.ToSql() > %w", err)
	}

	records := []Record{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(sentences) > %w", err)
	}
	return records, nil
}

// Authors groups the sentences table by author.
func (r *DBRepository) Authors(ctx context.Context) ([]AuthorCount, error) {
	query, args, err := r.builder.
		Select("author", "COUNT(*) AS total").
		From("sentences").
		GroupBy("author").
		OrderBy("author").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("select.ToSql() > %w", err)
	}

	authors := []AuthorCount{}
	if err := r.db.SelectContext(ctx, &authors, query, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(authors) > %w", err)
	}
	return authors, nil
}

var likeReplacer = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

func escapeLike(s string) string {
	return likeReplacer.Replace(s)
}
