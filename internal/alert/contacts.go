package alert

import (
	"context"
	"fmt"

	"tora-app.io/tora/ent"
	"tora-app.io/tora/ent/emergencycontact"
	apperrors "tora-app.io/tora/internal/pkg/errors"
)

// ContactInput carries the mutable fields of an emergency contact.
type ContactInput struct {
	Name          string
	Phone         string
	Email         string
	Relationship  string
	ReceiveAlerts *bool
	Priority      *int
}

// ContactManager implements parent-scoped emergency contact CRUD.
// Deletion is a one-way soft delete: a deleted contact stays in the table
// for audit but never re-enters any recipient set.
type ContactManager struct {
	client   *ent.Client
	resolver *RecipientResolver
}

// NewContactManager creates a contact manager. The resolver is used to
// invalidate cached recipient sets after mutations.
func NewContactManager(client *ent.Client, resolver *RecipientResolver) *ContactManager {
	return &ContactManager{client: client, resolver: resolver}
}

// Create adds a contact for the parent.
func (m *ContactManager) Create(ctx context.Context, parentID string, in ContactInput) (*ent.EmergencyContact, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed,
			"contact name and phone are required")
	}

	create := m.client.EmergencyContact.Create().
		SetParentID(parentID).
		SetName(in.Name).
		SetPhone(in.Phone).
		SetEmail(in.Email).
		SetRelationship(in.Relationship)
	if in.ReceiveAlerts != nil {
		create = create.SetReceiveAlerts(*in.ReceiveAlerts)
	}
	if in.Priority != nil {
		create = create.SetPriority(*in.Priority)
	}

	contact, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	m.resolver.InvalidateCache(ctx, parentID)
	return contact, nil
}

// List returns the parent's active contacts ordered by priority.
func (m *ContactManager) List(ctx context.Context, parentID string) ([]*ent.EmergencyContact, error) {
	contacts, err := m.client.EmergencyContact.Query().
		Where(
			emergencycontact.ParentIDEQ(parentID),
			emergencycontact.ActiveEQ(true),
		).
		Order(
			ent.Asc(emergencycontact.FieldPriority),
			ent.Asc(emergencycontact.FieldName),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// Update modifies a contact owned by the parent. The active flag is not
// updatable; a soft-deleted contact cannot be revived.
func (m *ContactManager) Update(ctx context.Context, parentID, contactID string, in ContactInput) (*ent.EmergencyContact, error) {
	contact, err := m.get(ctx, parentID, contactID)
	if err != nil {
		return nil, err
	}

	upd := contact.Update()
	if in.Name != "" {
		upd = upd.SetName(in.Name)
	}
	if in.Phone != "" {
		upd = upd.SetPhone(in.Phone)
	}
	if in.Email != "" {
		upd = upd.SetEmail(in.Email)
	}
	if in.Relationship != "" {
		upd = upd.SetRelationship(in.Relationship)
	}
	if in.ReceiveAlerts != nil {
		upd = upd.SetReceiveAlerts(*in.ReceiveAlerts)
	}
	if in.Priority != nil {
		upd = upd.SetPriority(*in.Priority)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	m.resolver.InvalidateCache(ctx, parentID)
	return updated, nil
}

// Delete soft-deletes a contact owned by the parent.
func (m *ContactManager) Delete(ctx context.Context, parentID, contactID string) error {
	contact, err := m.get(ctx, parentID, contactID)
	if err != nil {
		return err
	}
	if _, err := contact.Update().SetActive(false).Save(ctx); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	m.resolver.InvalidateCache(ctx, parentID)
	return nil
}

func (m *ContactManager) get(ctx context.Context, parentID, contactID string) (*ent.EmergencyContact, error) {
	contact, err := m.client.EmergencyContact.Query().
		Where(
			emergencycontact.IDEQ(contactID),
			emergencycontact.ParentIDEQ(parentID),
			emergencycontact.ActiveEQ(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrContactNotFoundf(contactID)
		}
		return nil, fmt.Errorf("query contact: %w", err)
	}
	return contact, nil
}
