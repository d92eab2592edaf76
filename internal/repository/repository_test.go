package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "name ASC", orderClause(productSortColumns, "name", "asc"))
	assert.Equal(t, "minimum_stock DESC", orderClause(productSortColumns, "minimumStock", "desc"))
	assert.Equal(t, "quantity DESC", orderClause(productSortColumns, "quantity", ""))
}

func TestOrderClauseUnknownFieldFallsBack(t *testing.T) {
	// Whitelisting keeps caller input out of the SQL.
	assert.Equal(t, "created_at DESC", orderClause(productSortColumns, "password; DROP TABLE products", "desc"))
	assert.Equal(t, "created_at ASC", orderClause(transactionSortColumns, "", "ASC"))
}
