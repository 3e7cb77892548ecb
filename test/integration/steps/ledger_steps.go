package steps

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/cucumber/godog"
	"gorm.io/gorm"
)

const defaultPassword = "password123"

func (t *testContext) iAmLoggedInAs(email string) error {
	if token, ok := t.tokens[email]; ok {
		t.accessToken = token
		return nil
	}

	t.accessToken = ""
	name := strings.Split(email, "@")[0]
	register := fmt.Sprintf(`{"email":%q,"name":%q,"password":%q}`, email, name, defaultPassword)
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/register", []byte(register)); err != nil {
		return err
	}

	if t.response.status == http.StatusConflict {
		login := fmt.Sprintf(`{"email":%q,"password":%q}`, email, defaultPassword)
		if err := t.executeRequest(http.MethodPost, "/api/v1/auth/login", []byte(login)); err != nil {
			return err
		}
	}

	token, ok := getFieldValue(t.response.body, "access_token").(string)
	if !ok || token == "" {
		return fmt.Errorf("could not authenticate %s: status %d, body %v", email, t.response.status, t.response.body)
	}

	t.tokens[email] = token
	t.accessToken = token
	t.response = nil
	return nil
}

func (t *testContext) iAmNotLoggedIn() error {
	t.accessToken = ""
	return nil
}

func (t *testContext) iHaveTheFollowingTransactions(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("transactions table needs a header row and at least one transaction")
	}

	columns := make(map[string]int, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		columns[cell.Value] = i
	}
	for _, required := range []string{"date", "description", "amount", "type", "category"} {
		if _, ok := columns[required]; !ok {
			return fmt.Errorf("transactions table is missing the %q column", required)
		}
	}

	for _, row := range table.Rows[1:] {
		cell := func(name string) string { return row.Cells[columns[name]].Value }

		payload, err := json.Marshal(map[string]any{
			"date":        cell("date"),
			"description": cell("description"),
			"amount":      json.Number(cell("amount")),
			"type":        cell("type"),
			"category":    cell("category"),
		})
		if err != nil {
			return err
		}

		if err := t.executeRequest(http.MethodPost, "/api/v1/transactions", payload); err != nil {
			return err
		}
		if t.response.status != http.StatusCreated {
			return fmt.Errorf("creating transaction %q returned %d: %v", cell("description"), t.response.status, t.response.body)
		}
	}

	t.response = nil
	return nil
}

func (t *testContext) iHaveADebtOfTo(amount, lender string) error {
	today := t.timeMock.Now().Format("2006-01-02")
	returnDate := t.timeMock.Now().AddDate(0, 1, 0).Format("2006-01-02")

	payload, err := json.Marshal(map[string]any{
		"lender_name": lender,
		"amount":      json.Number(amount),
		"loan_date":   today,
		"return_date": returnDate,
	})
	if err != nil {
		return err
	}

	if err := t.executeRequest(http.MethodPost, "/api/v1/debts", payload); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("creating debt to %s returned %d: %v", lender, t.response.status, t.response.body)
	}

	id, ok := getFieldValue(t.response.body, "id").(string)
	if !ok {
		return fmt.Errorf("debt response has no id: %v", t.response.body)
	}
	t.saved["debt_id"] = id
	t.response = nil
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entitySlicePtr, err := t.newModelSlice(table)
	if err != nil {
		return err
	}

	result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
	if result.Error != nil {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entitySlicePtr, err := t.newModelSlice(table)
	if err != nil {
		return err
	}

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

// newModelSlice returns a pointer to an empty slice of the model registered for table.
func (t *testContext) newModelSlice(table string) (reflect.Value, error) {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return reflect.Value{}, fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
	entitySlicePtr := reflect.New(entitySlice.Type())
	entitySlicePtr.Elem().Set(entitySlice)
	return entitySlicePtr, nil
}
