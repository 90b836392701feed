package steps

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spendxp/backend/test/integration/mock"
)

func (t *testContext) aRegisteredUserWithPIN(email, pin string) error {
	return t.aRegisteredUserWithPINAndCurrency(email, pin, "USD")
}

func (t *testContext) aRegisteredUserWithPINAndCurrency(email, pin, currency string) error {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"name":     "Test Teen",
		"currency": currency,
		"pin":      pin,
	})
	if err != nil {
		return err
	}

	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/register", payload); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("registration failed with status %d: %v", t.response.status, t.response.body)
	}

	t.accountKeys = append(t.accountKeys, strings.ToLower(email))
	return t.iUseTheReturnedAccessToken()
}

// iUseTheReturnedAccessToken authenticates later requests with the token of
// the last register, login, or reset response.
func (t *testContext) iUseTheReturnedAccessToken() error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}
	token, ok := body["access_token"].(string)
	if !ok || token == "" {
		return fmt.Errorf("response has no access_token: %v", body)
	}
	if email, ok := getFieldValue(body, "user.email").(string); ok {
		t.accountKeys = append(t.accountKeys, email)
	}
	t.userToken = token
	t.accessToken = token
	return nil
}

func (t *testContext) iAmInParentModeWithPIN(pin string) error {
	t.accessToken = t.userToken
	payload, err := json.Marshal(map[string]string{"pin": pin})
	if err != nil {
		return err
	}

	if err := t.executeRequest(http.MethodPost, "/api/v1/parent/session", payload); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("parent session failed with status %d: %v", t.response.status, t.response.body)
	}

	body, _ := t.responseObject()
	token, _ := body["access_token"].(string)
	if token == "" {
		return fmt.Errorf("parent session returned no token: %v", body)
	}
	t.parentToken = token
	t.accessToken = token
	return nil
}

func (t *testContext) iUseTheParentToken() error {
	if t.parentToken == "" {
		return fmt.Errorf("no parent session started")
	}
	t.accessToken = t.parentToken
	return nil
}

func (t *testContext) iUseTheUserToken() error {
	t.accessToken = t.userToken
	return nil
}

func (t *testContext) iRememberTheResponseFieldAs(field, name string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}
	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	t.vars[name] = fmt.Sprintf("%v", value)
	return nil
}

func (t *testContext) theCurrentTimeIs(value string) error {
	at, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	timeMock.SetCurrentTime(at)
	return nil
}

func (t *testContext) daysHavePassed(days int) error {
	d := time.Duration(days) * 24 * time.Hour
	timeMock.Advance(d)
	mock.FastForwardRedis(d)
	return nil
}

func (t *testContext) theEmailAPIRespondsWithStatus(status int) error {
	emailAPI.SetResponse(-1, http.MethodPost, "/emails", status, map[string]any{
		"statusCode": status,
		"name":       "validation_error",
		"message":    "rejected by test",
	})
	return nil
}

func (t *testContext) pendingNotificationsAreDelivered() error {
	injector.Dispatcher.Wait()
	return nil
}

func (t *testContext) theEmailAPIShouldHaveReceivedEmails(count int) error {
	injector.Dispatcher.Wait()
	if got := emailAPI.RequestCount(http.MethodPost, "/emails"); got != count {
		return fmt.Errorf("expected %d emails, got %d", count, got)
	}
	return nil
}

func (t *testContext) emailField(index int, field string) (string, error) {
	body := emailAPI.GetRequestBody(http.MethodPost, "/emails", index-1)
	if body == nil {
		return "", fmt.Errorf("email %d was not received", index)
	}
	value := getFieldValue(body, field)
	if value == nil {
		return "", fmt.Errorf("email %d has no field '%s': %v", index, field, body)
	}
	return fmt.Sprintf("%v", value), nil
}

func (t *testContext) emailFieldShouldBe(index int, field, expected string) error {
	actual, err := t.emailField(index, field)
	if err != nil {
		return err
	}
	if actual != expected {
		return fmt.Errorf("email %d field '%s' expected '%s', got '%s'", index, field, expected, actual)
	}
	return nil
}

func (t *testContext) emailFieldShouldContain(index int, field, expected string) error {
	actual, err := t.emailField(index, field)
	if err != nil {
		return err
	}
	if !strings.Contains(actual, expected) {
		return fmt.Errorf("email %d field '%s' does not contain '%s': %s", index, field, expected, actual)
	}
	return nil
}
