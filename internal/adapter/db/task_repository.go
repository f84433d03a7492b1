package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const taskColumns = "id, title, description, status, priority, due_date, created_by, assigned_to, timezone, created_at, updated_at"

const insertTaskQuery = `
INSERT INTO tasks (id, title, description, status, priority, due_date, created_by, assigned_to, timezone, created_at, updated_at)
VALUES (:id, :title, :description, :status, :priority, :due_date, :created_by, :assigned_to, :timezone, :created_at, :updated_at)
`

type TaskRepository struct {
	db *sqlx.DB
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type taskRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Status      string         `db:"status"`
	Priority    string         `db:"priority"`
	DueDate     string         `db:"due_date"`
	CreatedBy   string         `db:"created_by"`
	AssignedTo  sql.NullString `db:"assigned_to"`
	Timezone    string         `db:"timezone"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *TaskRepository) Find(ctx context.Context, filter ports.TaskFilter, sortSpec ports.TaskSort, skip, limit int) ([]domain.Task, error) {
	where, args := buildWhere(filter)
	query := fmt.Sprintf("SELECT %s FROM tasks%s%s", taskColumns, where, orderBy(sortSpec))
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, skip)
	}

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, ok := mapTaskRow(row)
		if !ok {
			// Legacy or hand-edited rows with unknown enum values must not
			// abort a whole scan.
			zap.L().Warn("skipping malformed task row",
				zap.String("task_id", row.ID),
				zap.String("status", row.Status),
				zap.String("priority", row.Priority),
			)
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context, filter ports.TaskFilter) (int, error) {
	where, args := buildWhere(filter)
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM tasks"+where, args...); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TaskRepository) FindOne(ctx context.Context, id string) (domain.Task, error) {
	var row taskRow
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE id = ?", taskColumns)
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	// Single-document reads return the record as stored even when its enum
	// values are unknown; only aggregate scans skip such rows.
	task, _ := mapTaskRow(row)
	return task, nil
}

func (r *TaskRepository) Insert(ctx context.Context, task domain.Task) error {
	_, err := r.db.NamedExecContext(ctx, insertTaskQuery, mapTaskToRow(task))
	return err
}

func (r *TaskRepository) UpdateOne(ctx context.Context, id string, patch ports.TaskPatch) error {
	sets := []string{"updated_at = ?"}
	args := []any{patch.UpdatedAt}

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*patch.Status))
	}
	if patch.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*patch.Priority))
	}
	if patch.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, *patch.DueDate)
	}
	if patch.AssignedToSet {
		if patch.AssignedTo == nil {
			sets = append(sets, "assigned_to = NULL")
		} else {
			sets = append(sets, "assigned_to = ?")
			args = append(args, *patch.AssignedTo)
		}
	}
	if patch.Timezone != nil {
		sets = append(sets, "timezone = ?")
		args = append(args, *patch.Timezone)
	}

	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ?", strings.Join(sets, ", "))
	args = append(args, id)
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *TaskRepository) DeleteOne(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// buildWhere turns the filter contract into a parameterized WHERE clause.
// The access scope is the first condition for non-admin callers; every
// other predicate is ANDed onto it.
func buildWhere(filter ports.TaskFilter) (string, []any) {
	conds := make([]string, 0, 8)
	args := make([]any, 0, 8)

	if !filter.Scope.Admin {
		conds = append(conds, "(created_by = ? OR assigned_to = ?)")
		args = append(args, filter.Scope.CallerID, filter.Scope.CallerID)
	}
	if filter.Status != nil {
		conds = append(conds, "status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Priority != nil {
		conds = append(conds, "priority = ?")
		args = append(args, string(*filter.Priority))
	}
	if filter.AssignedTo != nil {
		conds = append(conds, "assigned_to = ?")
		args = append(args, *filter.AssignedTo)
	}
	if filter.CreatedBy != nil {
		conds = append(conds, "created_by = ?")
		args = append(args, *filter.CreatedBy)
	}
	if filter.DueFrom != "" {
		conds = append(conds, "due_date >= ?")
		args = append(args, filter.DueFrom)
	}
	if filter.DueTo != "" {
		conds = append(conds, "due_date <= ?")
		args = append(args, filter.DueTo)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Priority sorts by ordinal rank, never by string order.
const priorityRankExpr = "CASE priority WHEN 'LOW' THEN 1 WHEN 'MEDIUM' THEN 2 WHEN 'HIGH' THEN 3 ELSE 0 END"

var sortColumns = map[domain.SortField]string{
	domain.SortByDueDate:   "due_date",
	domain.SortByPriority:  priorityRankExpr,
	domain.SortByStatus:    "status",
	domain.SortByCreatedAt: "created_at",
	domain.SortByUpdatedAt: "updated_at",
	domain.SortByTitle:     "title",
}

// orderBy always appends created_at, id so equal keys come back in a stable
// insertion order.
func orderBy(sortSpec ports.TaskSort) string {
	column, ok := sortColumns[sortSpec.Field]
	if !ok {
		return " ORDER BY created_at, id"
	}
	direction := "ASC"
	if sortSpec.Order == domain.SortDesc {
		direction = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, created_at, id", column, direction)
}

func mapTaskRow(row taskRow) (domain.Task, bool) {
	task := domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.TaskStatus(row.Status),
		Priority:    domain.TaskPriority(row.Priority),
		DueDate:     row.DueDate,
		CreatedBy:   row.CreatedBy,
		Timezone:    row.Timezone,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.AssignedTo.Valid {
		value := row.AssignedTo.String
		task.AssignedTo = &value
	}
	return task, task.Status.Valid() && task.Priority.Valid()
}

func mapTaskToRow(task domain.Task) taskRow {
	row := taskRow{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		CreatedBy:   task.CreatedBy,
		Timezone:    task.Timezone,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	if task.AssignedTo != nil {
		row.AssignedTo = sql.NullString{String: *task.AssignedTo, Valid: true}
	}
	return row
}
