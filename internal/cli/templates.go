package cli

// Starter files written by `dmart init`. The sample rows form a coherent
// mart: every foreign-key reference resolves once the files are loaded in
// dependency order.

const templateConfig = `# dmart project configuration. Every setting is optional.

# SQLite store file, relative to this directory unless absolute.
store: ecom.db

# Report query file materialized into the report_output table.
report: report.sql

# Per-entity CSV filename overrides.
#files:
#  orders: sales/orders-2024.csv
`

const templateCategories = `id,category_name,parent_category_id
1,Books,
2,Fiction,1
3,Non-Fiction,1
`

const templateProducts = `id,name,category,price,stock_quantity
10,Novel,2,9.99,5
11,World Atlas,3,24.50,2
12,Bookmark,,1.25,100
`

const templateCustomers = `id,name,email,registration_date
100,Ada Lovelace,ada@example.com,2024-01-15
101,Alan Turing,,2024-02-03
`

const templateOrders = `id,customer_id,product_id,order_date,quantity,total_price
1000,100,10,2024-03-01,1,9.99
1001,101,11,2024-03-04,2,49.00
`

const templateReviews = `id,product_id,customer_id,rating,review_text,review_date
500,10,100,5,A classic.,2024-03-10
501,11,101,4,,2024-03-12
`

const templateReportSQL = `SELECT id, name FROM products WHERE price > 5;
`

// templateFiles maps filename to content for the scaffolded project.
var templateFiles = map[string]string{
	"dmart.yaml":     templateConfig,
	"categories.csv": templateCategories,
	"products.csv":   templateProducts,
	"customers.csv":  templateCustomers,
	"orders.csv":     templateOrders,
	"reviews.csv":    templateReviews,
	"report.sql":     templateReportSQL,
}
