package resource

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/exceptions"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client[clinic_dto.Patient] {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient[clinic_dto.Patient](resty.New().SetBaseURL(server.URL), "/patients", zap.NewNop())
}

func TestClientListAll(t *testing.T) {
	t.Run("Decodes Collection", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/patients", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `[{"id":1,"first_name":"Ada","last_name":"L","age":null,"gender":null,"phone":"1"},{"id":2,"first_name":"Alan","last_name":"T","age":41,"gender":"Male","phone":"2"}]`)
		})

		patients, err := client.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, patients, 2)
		assert.Nil(t, patients[0].Age)
		require.NotNil(t, patients[1].Age)
		assert.Equal(t, 41, *patients[1].Age)
	})

	t.Run("Backend Error Is Absent Collection", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		patients, err := client.ListAll(context.Background())
		assert.Error(t, err)
		assert.Nil(t, patients)
	})

	t.Run("Deadline Exceeded", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := client.ListAll(ctx)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusGatewayTimeout, customErr.StatusCode)
	})

	t.Run("Nested Collection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/students/3/enrollments", r.URL.Path)
			io.WriteString(w, `[{"enrollment_id":10,"course_title":"Go"}]`)
		}))
		defer server.Close()

		client := NewClient[clinic_dto.Enrollment](resty.New().SetBaseURL(server.URL), "/students", zap.NewNop())
		rows, err := client.ListAt(context.Background(), "/3/enrollments")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Go", *rows[0].CourseTitle)
	})
}

func TestClientGetOne(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/patients/42", r.URL.Path)
			io.WriteString(w, `{"id":42,"first_name":"Grace","last_name":"Hopper","phone":"9"}`)
		})

		patient, err := client.GetOne(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "Grace Hopper", patient.FullName())
	})

	t.Run("Not Found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		patient, err := client.GetOne(context.Background(), 42)
		assert.Nil(t, patient)
		assert.True(t, errors.Is(err, exceptions.ErrResourceNotFound))
	})

	t.Run("Null Body Is Not Found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `null`)
		})

		_, err := client.GetOne(context.Background(), 42)
		assert.True(t, errors.Is(err, exceptions.ErrResourceNotFound))
	})

	t.Run("Server Error Is Not A Not Found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.GetOne(context.Background(), 42)
		require.Error(t, err)
		assert.False(t, errors.Is(err, exceptions.ErrResourceNotFound))
	})
}

func TestClientMutations(t *testing.T) {
	t.Run("Create Posts JSON", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"first_name":"Ada","last_name":"L","age":null,"gender":null,"phone":""}`, string(body))
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"id":7,"first_name":"Ada","last_name":"L"}`)
		})

		created, err := client.Create(context.Background(), &clinic_dto.PatientRequest{FirstName: "Ada", LastName: "L"})
		require.NoError(t, err)
		assert.Equal(t, int64(7), created.ID)
	})

	t.Run("Update Puts To Item", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/patients/7", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		updated, err := client.Update(context.Background(), 7, &clinic_dto.PatientRequest{FirstName: "Ada"})
		require.NoError(t, err)
		assert.NotNil(t, updated, "an empty body still reports success")
	})

	t.Run("Delete", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusOK)
		})

		assert.NoError(t, client.Delete(context.Background(), 7))
	})

	t.Run("Delete Failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		assert.Error(t, client.Delete(context.Background(), 7))
	})

	t.Run("Unreachable Backend", func(t *testing.T) {
		client := NewClient[clinic_dto.Patient](resty.New().SetBaseURL("http://127.0.0.1:1"), "/patients", zap.NewNop())
		_, err := client.Create(context.Background(), &clinic_dto.PatientRequest{})
		assert.Error(t, err)
	})
}

func TestBackendDetail(t *testing.T) {
	assert.Equal(t, "first_name is required", backendDetail([]byte(`{"detail":"first_name is required"}`)))
	assert.Equal(t, "database is locked", backendDetail([]byte(`{"error":"database is locked"}`)))
	assert.Equal(t, "", backendDetail([]byte(`<html>Bad Gateway</html>`)))
	assert.Equal(t, "", backendDetail(nil))
}
