package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/projects/internal/models"
	"github.com/thenoetrevino/projects/internal/types"
)

// Table names
const (
	categoryTable        = "category"
	materialTable        = "material"
	projectTable         = "project"
	projectCategoryTable = "project_category"
	stepTable            = "step"
)

// ProjectRepo reads and writes the project aggregate: a project row plus its
// materials, ordered steps and categories. Every call acquires its own
// connection and every multi-statement call runs in one transaction.
type ProjectRepo struct {
	dialect Dialect
	conns   ConnProvider
	txc     TxController
	binder  ParameterBinder
	extract RowExtractor
	logger  *slog.Logger
}

// Option configures a ProjectRepo
type Option func(*ProjectRepo)

// WithTxController replaces the default database/sql transaction controller
func WithTxController(txc TxController) Option {
	return func(r *ProjectRepo) {
		r.txc = txc
	}
}

// WithParameterBinder replaces the default binder
func WithParameterBinder(b ParameterBinder) Option {
	return func(r *ProjectRepo) {
		r.binder = b
	}
}

// WithRowExtractor replaces the default row extractor
func WithRowExtractor(e RowExtractor) Option {
	return func(r *ProjectRepo) {
		r.extract = e
	}
}

// WithLogger sets the logger used for rollback and release failures
func WithLogger(logger *slog.Logger) Option {
	return func(r *ProjectRepo) {
		r.logger = logger
	}
}

// NewProjectRepo creates a project repository over conns
func NewProjectRepo(conns ConnProvider, dialect Dialect, opts ...Option) *ProjectRepo {
	r := &ProjectRepo{
		dialect: dialect,
		conns:   conns,
		binder:  NewParameterBinder(dialect),
		extract: NewRowExtractor(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.txc == nil {
		r.txc = NewTxController(r.logger)
	}
	return r
}

// InsertProject inserts the five scalar attributes of project and sets the
// store-generated id on project itself, which is also returned.
func (r *ProjectRepo) InsertProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	const op = "insert project"
	if project.ID.IsAssigned() {
		return nil, storeError(op, fmt.Errorf("%w: %d", models.ErrIDAlreadyAssigned, project.ID))
	}

	query := "INSERT INTO " + projectTable +
		" (project_name, estimated_hours, actual_hours, difficulty, notes) VALUES (?, ?, ?, ?, ?)"

	var projectID int64
	err := withTx(ctx, r.conns, r.txc, r.logger, op, func(tx *sql.Tx) error {
		stmt, args, err := r.binder.Bind(query,
			project.Name,
			project.EstimatedHours,
			project.ActualHours,
			project.Difficulty,
			sql.NullString{String: project.Notes, Valid: project.Notes != ""},
		)
		if err != nil {
			return err
		}

		projectID, err = r.insertReturningID(ctx, tx, stmt, args)
		if err != nil {
			return fmt.Errorf("failed to insert project '%s': %w", project.Name, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	project.ID = types.ProjectID(projectID)
	return project, nil
}

// insertReturningID executes an insert into the project table and reads the
// generated key the way the dialect supports it.
func (r *ProjectRepo) insertReturningID(ctx context.Context, tx *sql.Tx, stmt string, args []any) (int64, error) {
	if r.dialect == Postgres {
		var id int64
		if err := tx.QueryRowContext(ctx, stmt+" RETURNING project_id", args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	result, err := tx.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get project ID after insert: %w", err)
	}
	return id, nil
}

// FetchAllProjects returns every project ordered by name. Child collections
// are left empty.
func (r *ProjectRepo) FetchAllProjects(ctx context.Context) ([]*models.Project, error) {
	query := "SELECT " + projectColumns + " FROM " + projectTable + " ORDER BY project_name"

	var projects []*models.Project
	err := withConn(ctx, r.conns, r.logger, "fetch all projects", func(conn *sql.Conn) error {
		stmt, args, err := r.binder.Bind(query)
		if err != nil {
			return err
		}

		rows, err := conn.QueryContext(ctx, stmt, args...)
		if err != nil {
			return fmt.Errorf("failed to query all projects: %w", err)
		}
		defer closeRows(r.logger, rows)

		projects = make([]*models.Project, 0, 10)
		for rows.Next() {
			p, err := r.extract.Project(rows)
			if err != nil {
				return err
			}
			projects = append(projects, p)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating project rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// FetchProjectByID loads a project with its materials, steps (ascending by
// step order) and categories from one transaction. The bool is false when no
// project has the given id.
func (r *ProjectRepo) FetchProjectByID(ctx context.Context, id types.ProjectID) (*models.Project, bool, error) {
	query := "SELECT " + projectColumns + " FROM " + projectTable + " WHERE project_id = ?"

	var project *models.Project
	err := withTx(ctx, r.conns, r.txc, r.logger, fmt.Sprintf("fetch project %d", id), func(tx *sql.Tx) error {
		stmt, args, err := r.binder.Bind(query, id)
		if err != nil {
			return err
		}

		p, err := r.extract.Project(tx.QueryRowContext(ctx, stmt, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		materials, err := r.fetchMaterials(ctx, tx, id)
		if err != nil {
			return err
		}
		steps, err := r.fetchSteps(ctx, tx, id)
		if err != nil {
			return err
		}
		categories, err := r.fetchCategories(ctx, tx, id)
		if err != nil {
			return err
		}

		p.Materials = append(p.Materials, materials...)
		p.Steps = append(p.Steps, steps...)
		p.Categories = append(p.Categories, categories...)
		project = p
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return project, project != nil, nil
}

func (r *ProjectRepo) fetchMaterials(ctx context.Context, tx *sql.Tx, id types.ProjectID) ([]models.Material, error) {
	query := "SELECT " + materialColumns + " FROM " + materialTable +
		" WHERE project_id = ? ORDER BY material_id"

	materials := []models.Material{}
	err := r.queryRows(ctx, tx, query, id, func(row RowScanner) error {
		m, err := r.extract.Material(row)
		if err != nil {
			return err
		}
		materials = append(materials, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch materials for project %d: %w", id, err)
	}
	return materials, nil
}

func (r *ProjectRepo) fetchSteps(ctx context.Context, tx *sql.Tx, id types.ProjectID) ([]models.Step, error) {
	query := "SELECT " + stepColumns + " FROM " + stepTable +
		" WHERE project_id = ? ORDER BY step_order, step_id"

	steps := []models.Step{}
	err := r.queryRows(ctx, tx, query, id, func(row RowScanner) error {
		s, err := r.extract.Step(row)
		if err != nil {
			return err
		}
		steps = append(steps, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch steps for project %d: %w", id, err)
	}
	return steps, nil
}

func (r *ProjectRepo) fetchCategories(ctx context.Context, tx *sql.Tx, id types.ProjectID) ([]models.Category, error) {
	query := "SELECT " + categoryColumns + " FROM " + categoryTable + " c" +
		" JOIN " + projectCategoryTable + " pc ON pc.category_id = c.category_id" +
		" WHERE pc.project_id = ? ORDER BY c.category_id"

	categories := []models.Category{}
	err := r.queryRows(ctx, tx, query, id, func(row RowScanner) error {
		c, err := r.extract.Category(row)
		if err != nil {
			return err
		}
		categories = append(categories, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories for project %d: %w", id, err)
	}
	return categories, nil
}

// queryRows runs a child query filtered by project id and hands each row to fn
func (r *ProjectRepo) queryRows(ctx context.Context, tx *sql.Tx, query string, id types.ProjectID, fn func(RowScanner) error) error {
	stmt, args, err := r.binder.Bind(query, id)
	if err != nil {
		return err
	}

	rows, err := tx.QueryContext(ctx, stmt, args...)
	if err != nil {
		return err
	}
	defer closeRows(r.logger, rows)

	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// UpdateProject replaces all five scalar columns of the project row with the
// given id. It reports false when no row has that id.
func (r *ProjectRepo) UpdateProject(ctx context.Context, project *models.Project) (bool, error) {
	query := "UPDATE " + projectTable + " SET " +
		"project_name = ?, " +
		"estimated_hours = ?, " +
		"actual_hours = ?, " +
		"difficulty = ?, " +
		"notes = ? " +
		"WHERE project_id = ?"

	var updated bool
	err := withTx(ctx, r.conns, r.txc, r.logger, fmt.Sprintf("update project %d", project.ID), func(tx *sql.Tx) error {
		stmt, args, err := r.binder.Bind(query,
			project.Name,
			project.EstimatedHours,
			project.ActualHours,
			project.Difficulty,
			sql.NullString{String: project.Notes, Valid: project.Notes != ""},
			project.ID,
		)
		if err != nil {
			return err
		}

		updated, err = execAffectsOne(ctx, tx, stmt, args)
		return err
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

// DeleteProject removes the project row with the given id. Materials, steps
// and category links go with it through ON DELETE CASCADE. It reports false
// when no row has that id.
func (r *ProjectRepo) DeleteProject(ctx context.Context, id types.ProjectID) (bool, error) {
	query := "DELETE FROM " + projectTable + " WHERE project_id = ?"

	var deleted bool
	err := withTx(ctx, r.conns, r.txc, r.logger, fmt.Sprintf("delete project %d", id), func(tx *sql.Tx) error {
		stmt, args, err := r.binder.Bind(query, id)
		if err != nil {
			return err
		}

		deleted, err = execAffectsOne(ctx, tx, stmt, args)
		return err
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func execAffectsOne(ctx context.Context, tx *sql.Tx, stmt string, args []any) (bool, error) {
	result, err := tx.ExecContext(ctx, stmt, args...)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}
