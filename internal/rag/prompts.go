package rag

import (
	"fmt"
	"strings"
)

// currentDateLiteral replaces relative-date functions in generated SQL so
// output does not depend on the system clock.
const currentDateLiteral = "August 17, 2025"

func synthesisPrompt(context Context, question string) string {
	var schema strings.Builder
	for _, snippet := range context {
		schema.WriteString(snippet.Text)
		schema.WriteString("\n\n")
	}

	return fmt.Sprintf(`You are a DuckDB SQL expert. Your task is to write a SQL query based on a user's question and the provided database schema context.

You must follow these rules:
1. Generate only the SQL query. Do not add any explanations, introductory text, or markdown formatting like %s.
2. The query must target the main schema. When querying a table, you MUST use the full qualified path which is main.TABLE_NAME.
   - For the customers table, the full path is main.customers
   - For the sales table, the full path is main.sales
3. The customer_id column in the sales table links to the customers table. The join condition is s.customer_id = c.customer_id.
4. IMPORTANT DATE RULE: sale_date is a DATE column. Compare dates with DATE 'YYYY-MM-DD' literals and INTERVAL arithmetic. Do NOT use functions like CURRENT_DATE or NOW(). The current date for this query is %s.

Schema Context:
%s
User's Question:
%s

SQL Query:
`, "```sql", currentDateLiteral, schema.String(), question)
}

func correctionPrompt(question, failedQuery, errorMessage string) string {
	return fmt.Sprintf(`The user asked the following question: "%s"
I generated this SQL query:
---
%s
---
But it failed with this error:
---
%s
---
Please correct the SQL query to fix the error.
You must follow these rules:
1. Only return the corrected SQL query.
2. Do not add any explanation, introductory text, or markdown formatting.
3. Do NOT use relative date functions like CURRENT_DATE or NOW(); use DATE 'YYYY-MM-DD' literals instead. The current date for this query is %s.
`, question, failedQuery, errorMessage, currentDateLiteral)
}

func summaryPrompt(question, queryResult string) string {
	return fmt.Sprintf(`You are an AI assistant for a business intelligence dashboard.
Your task is to provide a concise, easy-to-understand summary of the data returned from a database query.
The user's original question was: "%s"
The data from the database is:
%s

Based on this data, provide a clear, natural language summary.
If the data is empty or contains an error message, state that you couldn't find an answer.
Do not mention SQL or the database. Just present the answer to the user.

Summary:
`, question, queryResult)
}
