package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// The role set is a closed enum (Admin, User, Seller) so the model and
// policy table are compiled in rather than loaded from storage.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (r.obj == p.obj || p.obj == "*") && (r.act == p.act || p.act == "*")
`

var policies = [][]string{
	// Admin can do everything.
	{"Admin", "*", "*"},

	// Sellers run the counter: full sales flow, inventory management,
	// read access to the rest of the dashboard.
	{"Seller", "sales", "*"},
	{"Seller", "inventory", "*"},
	{"Seller", "notification", "*"},
	{"Seller", "stats", "read"},
	{"Seller", "company", "read"},
	{"Seller", "upload", "create"},

	// Plain users are read-only.
	{"User", "sales", "read"},
	{"User", "inventory", "read"},
	{"User", "notification", "read"},
	{"User", "stats", "read"},
	{"User", "company", "read"},
}

// NewEnforcer builds the in-memory casbin enforcer used by the
// Authorize middleware.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
