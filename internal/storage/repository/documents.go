package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/document-manager/internal/lib/apperrors"
	"github.com/magabrotheeeer/document-manager/internal/models"
)

// CreateDocument вставляет новый документ и возвращает его ID.
func (s *Storage) CreateDocument(ctx context.Context, doc models.Document) (string, error) {
	const op = "storage.CreateDocument"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO documents (title, content, owner_uid)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		doc.Title, doc.Content, doc.OwnerUID).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadDocument возвращает документ по его ID вместе с данными владельца.
//
// Отсутствие записи транслируется в apperrors.ErrDocumentNotFound.
func (s *Storage) ReadDocument(ctx context.Context, id string) (*models.Document, error) {
	const op = "storage.ReadDocument"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT d.id, d.title, d.content, d.owner_uid, d.created_at, d.updated_at,
			      u.uid, u.full_name, u.email, u.role
			  FROM documents d
			  JOIN users u ON u.uid = d.owner_uid
			  WHERE d.id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Document
	var owner models.PublicUser
	if err := row.Scan(&result.ID, &result.Title, &result.Content, &result.OwnerUID,
		&result.CreatedAt, &result.UpdatedAt,
		&owner.UID, &owner.FullName, &owner.Email, &owner.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result.Owner = &owner
	return &result, nil
}

// ListDocumentsByOwner возвращает документы пользователя с пагинацией,
// новые записи первыми.
func (s *Storage) ListDocumentsByOwner(ctx context.Context, ownerUID string, limit, offset int) ([]*models.Document, error) {
	const op = "storage.ListDocumentsByOwner"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT d.id, d.title, d.content, d.owner_uid, d.created_at, d.updated_at,
			      u.uid, u.full_name, u.email, u.role
			  FROM documents d
			  JOIN users u ON u.uid = d.owner_uid
			  WHERE d.owner_uid = $1
			  ORDER BY d.created_at DESC
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, ownerUID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result, err := scanDocuments(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListAllDocuments возвращает документы всех пользователей с пагинацией,
// новые записи первыми.
func (s *Storage) ListAllDocuments(ctx context.Context, limit, offset int) ([]*models.Document, error) {
	const op = "storage.ListAllDocuments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT d.id, d.title, d.content, d.owner_uid, d.created_at, d.updated_at,
			      u.uid, u.full_name, u.email, u.role
			  FROM documents d
			  JOIN users u ON u.uid = d.owner_uid
			  ORDER BY d.created_at DESC
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result, err := scanDocuments(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateDocument обновляет заголовок и содержимое документа и возвращает
// количество изменённых строк. Владелец и ID через этот путь не меняются.
func (s *Storage) UpdateDocument(ctx context.Context, id, title, content string) (int, error) {
	const op = "storage.UpdateDocument"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE documents
			  SET title = $1, content = $2, updated_at = now()
			  WHERE id = $3`
	result, err := s.DB.ExecContext(ctx, query, title, content, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveDocument удаляет документ по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveDocument(ctx context.Context, id string) (int, error) {
	const op = "storage.RemoveDocument"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM documents WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

func scanDocuments(rows *sql.Rows) ([]*models.Document, error) {
	var result []*models.Document
	for rows.Next() {
		var item models.Document
		var owner models.PublicUser
		if err := rows.Scan(&item.ID, &item.Title, &item.Content, &item.OwnerUID,
			&item.CreatedAt, &item.UpdatedAt,
			&owner.UID, &owner.FullName, &owner.Email, &owner.Role); err != nil {
			return nil, err
		}
		item.Owner = &owner
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
