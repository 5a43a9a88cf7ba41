// Package knowledge holds the static schema descriptions used as retrieval
// candidates when building SQL generation prompts.
package knowledge

// Snippet is one schema description covering a single table.
type Snippet struct {
	Name string
	Text string
}

// Corpus returns the schema knowledge in insertion order. The order is part
// of the retrieval contract: similarity ties are broken by position.
func Corpus() []Snippet {
	return []Snippet{
		{
			Name: "customers",
			Text: `Table Name: customers
Description: Stores individual customer records. Each row represents a unique customer.
The primary key is customer_id, a string like 'cust::001'.
Columns:
- customer_id (VARCHAR): The customer's unique ID.
- name (VARCHAR): The full name of the customer.
- city (VARCHAR): The city where the customer resides, e.g., 'Bengaluru', 'Mumbai'.
- loyalty_level (VARCHAR): The customer's tier in our loyalty program, such as 'Gold', 'Silver', or 'Bronze'.`,
		},
		{
			Name: "sales",
			Text: `Table Name: sales
Description: Stores individual sales transactions. Each row is a single sale event.
Columns:
- sale_id (VARCHAR): The sale's unique ID, a string like 'sale::001'.
- product_name (VARCHAR): The name of the product sold.
- sale_amount (INTEGER): The total monetary value of the sale in INR.
- sale_date (DATE): The date of the sale.
- customer_id (VARCHAR): Foreign key that links to a customer.
JOIN RULE: This table can be joined with the customers table using the condition: sales.customer_id = customers.customer_id`,
		},
	}
}
