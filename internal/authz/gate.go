// Package authz is the authorization gate: pure allow/deny decisions
// over the caller's verified role and the target resource. Role
// switches are exhaustive; anything unrecognized is denied.
package authz

import (
	"dinedir/internal/errors"
	"dinedir/internal/model"
)

// CanCreateListing reports whether the role may create a restaurant listing.
func CanCreateListing(role model.Role) error {
	switch role {
	case model.RoleOwner:
		return nil
	case model.RoleUser, model.RoleAdmin:
		return errors.ErrOwnerOnly
	default:
		return errors.ErrOwnerOnly
	}
}

// CanViewOwnedListings reports whether the role may view its own
// listings through the owner dashboard.
func CanViewOwnedListings(role model.Role) error {
	switch role {
	case model.RoleOwner:
		return nil
	case model.RoleUser, model.RoleAdmin:
		return errors.ErrOwnerOnly
	default:
		return errors.ErrOwnerOnly
	}
}

// CanMutateListing reports whether the caller may update or delete the
// listing owned by ownerID. Admins have no implicit mutation rights;
// they may only delete through CanAdminDeleteListing.
func CanMutateListing(role model.Role, callerID, ownerID uint) error {
	switch role {
	case model.RoleOwner:
		if callerID != ownerID {
			return errors.ErrNotListingOwner
		}
		return nil
	case model.RoleUser, model.RoleAdmin:
		return errors.ErrOwnerOnly
	default:
		return errors.ErrOwnerOnly
	}
}

// CanAdminDeleteListing reports whether the role may delete any listing.
func CanAdminDeleteListing(role model.Role) error {
	switch role {
	case model.RoleAdmin:
		return nil
	case model.RoleUser, model.RoleOwner:
		return errors.ErrAdminOnly
	default:
		return errors.ErrAdminOnly
	}
}

// CanCreateReview reports whether the role may author a review. Only
// plain users may; owners and admins are denied.
func CanCreateReview(role model.Role) error {
	switch role {
	case model.RoleUser:
		return nil
	case model.RoleOwner, model.RoleAdmin:
		return errors.ErrReviewNotAllowed
	default:
		return errors.ErrReviewNotAllowed
	}
}

// CanCreateAdmin reports whether the role may create admin accounts.
func CanCreateAdmin(role model.Role) error {
	switch role {
	case model.RoleAdmin:
		return nil
	case model.RoleUser, model.RoleOwner:
		return errors.ErrAdminOnly
	default:
		return errors.ErrAdminOnly
	}
}

// CanReconcileDuplicates reports whether the role may run the duplicate
// listing reconciliation job.
func CanReconcileDuplicates(role model.Role) error {
	switch role {
	case model.RoleAdmin:
		return nil
	case model.RoleUser, model.RoleOwner:
		return errors.ErrAdminOnly
	default:
		return errors.ErrAdminOnly
	}
}
