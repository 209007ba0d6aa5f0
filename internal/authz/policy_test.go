package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/document-manager/internal/models"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		isOwner bool
		op      Operation
		want    bool
	}{
		{name: "owner can read", role: models.RoleUser, isOwner: true, op: OpRead, want: true},
		{name: "owner can update", role: models.RoleUser, isOwner: true, op: OpUpdate, want: true},
		{name: "owner cannot delete own document", role: models.RoleUser, isOwner: true, op: OpDelete, want: false},
		{name: "stranger cannot read", role: models.RoleUser, isOwner: false, op: OpRead, want: false},
		{name: "stranger cannot update", role: models.RoleUser, isOwner: false, op: OpUpdate, want: false},
		{name: "stranger cannot delete", role: models.RoleUser, isOwner: false, op: OpDelete, want: false},
		{name: "admin can read any", role: models.RoleAdmin, isOwner: false, op: OpRead, want: true},
		{name: "admin can update any", role: models.RoleAdmin, isOwner: false, op: OpUpdate, want: true},
		{name: "admin can delete any", role: models.RoleAdmin, isOwner: false, op: OpDelete, want: true},
		{name: "admin owner can delete", role: models.RoleAdmin, isOwner: true, op: OpDelete, want: true},
		{name: "unknown role treated as regular user", role: "moderator", isOwner: true, op: OpRead, want: true},
		{name: "unknown role denied for others documents", role: "moderator", isOwner: false, op: OpRead, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.role, tt.isOwner, tt.op)
			assert.Equal(t, tt.want, got)
		})
	}
}
