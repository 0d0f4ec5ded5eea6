// Package policy holds pure business rules that span more than one entity.
package policy

import (
	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
)

// Promote moves an account into a profile-backed role.
//
// Accounts hold exactly one role. A guest may become a farmer or a buyer;
// asking for the role the account already holds succeeds without changes.
// Everything else, including a farmer asking to be a buyer, is a conflict.
// The caller persists the account in the same transaction as the new profile.
func Promote(account *entity.Account, target entity.Role) error {
	if !target.IsProfileRole() {
		return domainerrors.ErrValidationFailed.WithDetails("role " + target.String() + " cannot be granted through a profile")
	}

	switch {
	case target == entity.RoleFarmer && account.HasBuyerProfile():
		return domainerrors.ErrRoleTransitionNotAllowed.WithDetails("account already has a buyer profile")
	case target == entity.RoleBuyer && account.HasFarmerProfile():
		return domainerrors.ErrRoleTransitionNotAllowed.WithDetails("account already has a farmer profile")
	case !account.Role.CanTransitionTo(target):
		return domainerrors.ErrRoleTransitionNotAllowed.WithDetails(
			"cannot move from " + account.Role.String() + " to " + target.String())
	}

	account.Role = target
	account.SyncPrivileges()

	return nil
}
