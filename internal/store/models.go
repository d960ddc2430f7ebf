package store

import "time"

// Entity identity is the externally supplied id column; the loader never
// generates keys. Optional columns are pointers so an absent CSV value maps
// to NULL, not a zero value. Column names follow the source CSV headers.

// Category is a node in the self-referential category hierarchy.
// A non-null parent must already exist when the row is inserted.
type Category struct {
	ID       int64     `gorm:"column:id;primaryKey"`
	Name     string    `gorm:"column:category_name;not null"`
	ParentID *int64    `gorm:"column:parent_category_id"`
	Parent   *Category `gorm:"foreignKey:ParentID;references:ID"`
}

func (Category) TableName() string { return "categories" }

// Product is an item for sale, optionally attached to a category.
type Product struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name;not null"`
	CategoryID    *int64    `gorm:"column:category"`
	Price         *float64  `gorm:"column:price"`
	StockQuantity *int64    `gorm:"column:stock_quantity"`
	Category      *Category `gorm:"foreignKey:CategoryID;references:ID"`
}

func (Product) TableName() string { return "products" }

// Customer is a registered buyer. Dates are carried as text, exactly as they
// appear in the source CSV.
type Customer struct {
	ID               int64   `gorm:"column:id;primaryKey"`
	Name             string  `gorm:"column:name;not null"`
	Email            *string `gorm:"column:email"`
	RegistrationDate *string `gorm:"column:registration_date"`
}

func (Customer) TableName() string { return "customers" }

// Order links a customer to a purchased product.
type Order struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	CustomerID *int64    `gorm:"column:customer_id"`
	ProductID  *int64    `gorm:"column:product_id"`
	OrderDate  *string   `gorm:"column:order_date"`
	Quantity   *int64    `gorm:"column:quantity"`
	TotalPrice *float64  `gorm:"column:total_price"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;references:ID"`
	Product    *Product  `gorm:"foreignKey:ProductID;references:ID"`
}

func (Order) TableName() string { return "orders" }

// Review is a customer's rating of a product.
type Review struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	ProductID  *int64    `gorm:"column:product_id"`
	CustomerID *int64    `gorm:"column:customer_id"`
	Rating     *int64    `gorm:"column:rating"`
	ReviewText *string   `gorm:"column:review_text"`
	ReviewDate *string   `gorm:"column:review_date"`
	Product    *Product  `gorm:"foreignKey:ProductID;references:ID"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;references:ID"`
}

func (Review) TableName() string { return "reviews" }

// LoadRun is an audit row recorded once per load invocation. InputsDigest
// identifies the run's source files by content, so two marts built from the
// same inputs can be recognized as identical.
type LoadRun struct {
	ID           string    `gorm:"column:id;primaryKey"`
	StartedAt    time.Time `gorm:"column:started_at"`
	FinishedAt   time.Time `gorm:"column:finished_at"`
	RowsInserted int64     `gorm:"column:rows_inserted"`
	InputsDigest string    `gorm:"column:inputs_digest"`
}

func (LoadRun) TableName() string { return "load_runs" }
