// Package domain contains the core domain entities and types used by the
// application. These types represent the business concepts (users, tags,
// ingredients, recipes and the marks users put on them) and are intentionally
// free of infrastructure concerns so they can be shared across packages.
package domain
