// Package ingest reads entity CSV files and inserts their rows into the
// store under an insert-if-absent policy: a row whose id already exists is
// silently skipped, never overwritten.
//
// The entity set is closed. Every entity is a value of the Entity enumeration
// carrying its own descriptor (table name, decoder), so there is no
// string-keyed dispatch and no "unknown table" failure path.
package ingest

import (
	"fmt"

	"github.com/vvka-141/dmart/internal/store"
)

// Entity identifies one of the five base tables.
type Entity int

const (
	Categories Entity = iota
	Products
	Customers
	Orders
	Reviews
)

// IngestOrder lists all entities in foreign-key dependency order. Products
// reference categories, and orders/reviews reference customers and products,
// so ingesting in this order is the only way a well-formed data set loads
// without constraint errors.
var IngestOrder = [...]Entity{Categories, Products, Customers, Orders, Reviews}

// String returns the entity's table name, which is also the stem of its
// default CSV filename.
func (e Entity) String() string {
	return e.descriptor().name
}

// DefaultFile returns the conventional CSV filename for the entity.
func (e Entity) DefaultFile() string {
	return e.descriptor().name + ".csv"
}

// descriptor carries everything the ingestor needs for one entity: the table
// name, a model value for row counting, and the decoder turning CSV records
// into a batch of model structs.
type descriptor struct {
	name   string
	model  interface{}
	decode func(rows []record) (batch interface{}, n int, err error)
}

func (e Entity) descriptor() descriptor {
	switch e {
	case Categories:
		return descriptor{name: "categories", model: &store.Category{}, decode: decodeCategories}
	case Products:
		return descriptor{name: "products", model: &store.Product{}, decode: decodeProducts}
	case Customers:
		return descriptor{name: "customers", model: &store.Customer{}, decode: decodeCustomers}
	case Orders:
		return descriptor{name: "orders", model: &store.Order{}, decode: decodeOrders}
	case Reviews:
		return descriptor{name: "reviews", model: &store.Review{}, decode: decodeReviews}
	default:
		panic(fmt.Sprintf("ingest: invalid entity %d", int(e)))
	}
}

func decodeCategories(rows []record) (interface{}, int, error) {
	out := make([]store.Category, 0, len(rows))
	for i, r := range rows {
		id, err := r.id()
		if err != nil {
			return nil, 0, rowError(i, err)
		}
		parent, err := r.intField("parent_category_id")
		if err != nil {
			return nil, 0, rowError(i, err)
		}
		out = append(out, store.Category{
			ID:       id,
			Name:     r.get("category_name"),
			ParentID: parent,
		})
	}
	return &out, len(out), nil
}

func decodeProducts(rows []record) (interface{}, int, error) {
	out := make([]store.Product, 0, len(rows))
	for i, r := range rows {
		id, err := r.id()
		if err != nil {
			return nil, 0, rowError(i, err)
		}
		category, err := r.intField("category")
		if err != nil {
			return nil, 0, rowError(i, err)
		}
		price, err := r.floatField("price")
		if err != nil {
			return nil, 0, rowError(i, err)
		}
		stock, err := r.intField("stock_quantity")
		if err != nil {
			return nil, 0, rowError(i, err)
		}
		out = append(out, store.Product{
			ID:            id,
			Name:          r.get("name"),
			CategoryID:    category,
			Price:         price,
			StockQuantity: stock,
		})
	}
	return &out, len(out), nil
}

func decodeCustomers(rows []record) (interface{}, int, error) {
	out := make([]store.Customer, 0, len(rows))
	for i, r := range rows {
		id, err := r.id()
		if err != nil {
			return nil, 0, rowError(i, err)
		}
		out = append(out, store.Customer{
			ID:               id,
			Name:             r.get("name"),
			Email:            r.textField("email"),
			RegistrationDate: r.textField("registration_date"),
		})
	}
	return &out, len(out), nil
}

func decodeOrders(rows []record) (interface{}, int, error) {
	out := make([]store.Order, 0, len(rows))
	for i, r := range rows {
		id, err := r.id()
		if err != nil {
			return nil, 0, rowError(i, err)
		}
		customer, err := r.intField("customer_id")
		if err != nil {
			return nil, 0, rowError(i, err)
		}
		product, err := r.intField("product_id")
		if err != nil {
			return nil, 0, rowError(i, err)
		}
		quantity, err := r.intField("quantity")
		if err != nil {
			return nil, 0, rowError(i, err)
		}
		total, err := r.floatField("total_price")
		if err != nil {
			return nil, 0, rowError(i, err)
		}
		out = append(out, store.Order{
			ID:         id,
			CustomerID: customer,
			ProductID:  product,
			OrderDate:  r.textField("order_date"),
			Quantity:   quantity,
			TotalPrice: total,
		})
	}
	return &out, len(out), nil
}

func decodeReviews(rows []record) (interface{}, int, error) {
	out := make([]store.Review, 0, len(rows))
	for i, r := range rows {
		id, err := r.id()
		if err != nil {
			return nil, 0, rowError(i, err)
		}
		product, err := r.intField("product_id")
		if err != nil {
			return nil, 0, rowError(i, err)
		}
		customer, err := r.intField("customer_id")
		if err != nil {
			return nil, 0, rowError(i, err)
		}
		rating, err := r.intField("rating")
		if err != nil {
			return nil, 0, rowError(i, err)
		}
		out = append(out, store.Review{
			ID:         id,
			ProductID:  product,
			CustomerID: customer,
			Rating:     rating,
			ReviewText: r.textField("review_text"),
			ReviewDate: r.textField("review_date"),
		})
	}
	return &out, len(out), nil
}

// rowError annotates a decode error with the 1-based line number of the
// offending CSV row (the header is line 1).
func rowError(i int, err error) error {
	return fmt.Errorf("row %d: %w", i+2, err)
}
