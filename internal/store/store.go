/*
Package store is the engine's persistence collaborator: it provides the
current Profile and NutritionAssessment and accepts generated plans for
durable storage. Plans are stored as JSONB documents keyed by user id, one
current document per kind; the engine stays stateless between invocations.
*/
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"Fitforge_V1.0/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned when a user has no stored record of the requested
// kind. Callers treat a missing profile or assessment as "cannot generate".
var ErrNotFound = errors.New("record not found")

const persistTimeout = 5 * time.Second

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

/* =================================================================================
							Profile / Assessment providers
=================================================================================*/

func (s *Store) LoadProfile(ctx context.Context, userID string) (model.Profile, error) {
	var p model.Profile
	err := s.loadDocument(ctx, "profiles", userID, &p)
	return p, err
}

func (s *Store) SaveProfile(ctx context.Context, p model.Profile) error {
	return s.saveDocument(ctx, "profiles", p.UserID, p)
}

func (s *Store) LoadAssessment(ctx context.Context, userID string) (model.NutritionAssessment, error) {
	var a model.NutritionAssessment
	err := s.loadDocument(ctx, "assessments", userID, &a)
	return a, err
}

func (s *Store) SaveAssessment(ctx context.Context, a model.NutritionAssessment) error {
	return s.saveDocument(ctx, "assessments", a.UserID, a)
}

/* =================================================================================
								Plan sink
=================================================================================*/

func (s *Store) LoadWorkoutPlan(ctx context.Context, userID string) (*model.WeeklyPlan, error) {
	var p model.WeeklyPlan
	if err := s.loadDocument(ctx, "workout_plans", userID, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) SaveWorkoutPlan(ctx context.Context, plan *model.WeeklyPlan) error {
	return s.saveDocument(ctx, "workout_plans", plan.UserID, plan)
}

func (s *Store) LoadMealPlan(ctx context.Context, userID string) (*model.WeeklyMealPlan, error) {
	var p model.WeeklyMealPlan
	if err := s.loadDocument(ctx, "meal_plans", userID, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) SaveMealPlan(ctx context.Context, plan *model.WeeklyMealPlan) error {
	return s.saveDocument(ctx, "meal_plans", plan.UserID, plan)
}

func (s *Store) LoadGroceryList(ctx context.Context, userID string) (*model.GroceryList, error) {
	var l model.GroceryList
	if err := s.loadDocument(ctx, "grocery_lists", userID, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Store) SaveGroceryList(ctx context.Context, list *model.GroceryList) error {
	return s.saveDocument(ctx, "grocery_lists", list.UserID, list)
}

/* =================================================================================
							Fire-and-forget writes
=================================================================================*/

// PersistAsync issues a best-effort background write. The in-memory plan has
// already been updated and returned to the caller; a failed write is logged
// and never rolled back (local-first, eventually consistent).
func (s *Store) PersistAsync(kind, userID string, write func(context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := write(ctx); err != nil {
			log.Error().Err(err).Str("kind", kind).Str("user_id", userID).Msg("Background persist failed")
		}
	}()
}

/* =================================================================================
								Internals
=================================================================================*/

// The document tables share one shape: (user_id uuid primary key, doc jsonb,
// updated_at timestamptz). The table name is always a fixed literal from the
// methods above, never caller input.

func (s *Store) loadDocument(ctx context.Context, table, userID string, dest any) error {
	var raw []byte
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE user_id = $1`, table)
	err := s.pool.QueryRow(ctx, query, userID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", table, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode %s document: %w", table, err)
	}
	return nil
}

func (s *Store) saveDocument(ctx context.Context, table, userID string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", table, err)
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, doc, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`, table)
	if _, err := s.pool.Exec(ctx, query, userID, raw); err != nil {
		return fmt.Errorf("save %s: %w", table, err)
	}
	return nil
}
