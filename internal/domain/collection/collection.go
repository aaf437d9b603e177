// Package collection reúne las operaciones por ID sobre listas ordenadas que usan los dashboards.
// Ninguna función modifica la lista recibida: siempre devuelven una nueva.
package collection

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dolphnet-api/internal/domain"
)

// Identified entidad con identificador estable.
type Identified interface {
	EntityID() string
}

// Find devuelve el elemento con el ID dado.
func Find[T Identified](items []T, id string) (T, error) {
	for _, it := range items {
		if it.EntityID() == id {
			return it, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("id %q: %w", id, domain.ErrNotFound)
}

// Replace aplica fn al elemento con el ID dado y devuelve una lista nueva en el mismo orden.
// Los demás elementos quedan intactos. Si fn falla la lista original se devuelve sin cambios.
func Replace[T Identified](items []T, id string, fn func(T) (T, error)) ([]T, T, error) {
	var zero T
	for i, it := range items {
		if it.EntityID() != id {
			continue
		}
		updated, err := fn(it)
		if err != nil {
			return items, zero, err
		}
		out := make([]T, len(items))
		copy(out, items)
		out[i] = updated
		return out, updated, nil
	}
	return items, zero, fmt.Errorf("id %q: %w", id, domain.ErrNotFound)
}

// Remove quita el elemento con el ID dado conservando el orden del resto.
func Remove[T Identified](items []T, id string) ([]T, T, error) {
	var zero T
	for i, it := range items {
		if it.EntityID() != id {
			continue
		}
		out := make([]T, 0, len(items)-1)
		out = append(out, items[:i]...)
		out = append(out, items[i+1:]...)
		return out, it, nil
	}
	return items, zero, fmt.Errorf("id %q: %w", id, domain.ErrNotFound)
}

// Append devuelve una lista nueva con item al final.
func Append[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// Prepend devuelve una lista nueva con item al inicio.
func Prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// CountWhere cuenta los elementos que cumplen pred.
func CountWhere[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}

// SumOf suma el campo decimal que devuelve field.
func SumOf[T any](items []T, field func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(field(it))
	}
	return total
}
