// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/person, domain/todolist,
// domain/category, domain/listitem). This root package holds sentinel errors,
// the client-facing error types, and shared format validators.
package domain
