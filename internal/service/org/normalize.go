// internal/service/org/normalize.go
package org

import (
	"bytes"
	"encoding/json"

	"dealboard-gateway/internal/domain/org"
)

// NormalizeMemberships folds the drifting "my organizations" payload shapes
// into one membership list. Observed shapes, sometimes mixed in one response:
//
//	[{id, name, role}]                          flat organization records
//	[{organization: {id, name}, role}]          membership wrappers
//	[{org: {id, name}, memberRole|userRole}]    older wrapper/key variants
//
// id and name prefer the nested organization over the top level; a missing
// name becomes "Unknown". The role is read from the membership level only:
// role is a relationship attribute, not an organization attribute, so a role
// field inside the nested organization object is never consulted.
func NormalizeMemberships(raw json.RawMessage) []org.Membership {
	var items []map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&items); err != nil {
		return []org.Membership{}
	}

	memberships := make([]org.Membership, 0, len(items))
	for _, item := range items {
		nested := nestedOrg(item)

		id := stringField(nested, "id")
		if id == "" {
			id = stringField(item, "id")
		}
		if id == "" {
			continue
		}

		name := stringField(nested, "name")
		if name == "" {
			name = stringField(item, "name")
		}
		if name == "" {
			name = org.UnknownOrgName
		}

		role := stringField(item, "role")
		if role == "" {
			role = stringField(item, "memberRole")
		}
		if role == "" {
			role = stringField(item, "userRole")
		}

		memberships = append(memberships, org.Membership{
			OrganizationID:   id,
			OrganizationName: name,
			Role:             role,
		})
	}

	return memberships
}

func nestedOrg(item map[string]interface{}) map[string]interface{} {
	for _, key := range []string{"organization", "org"} {
		if m, ok := item[key].(map[string]interface{}); ok {
			return m
		}
	}
	return nil
}

func stringField(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
