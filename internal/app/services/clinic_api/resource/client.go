package resource

import (
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Client issues CRUD calls for one resource kind of the clinic backend.
type Client[T any] struct {
	http     *resty.Client
	path     string
	resource string
	log      *zap.Logger
}

func NewClient[T any](http *resty.Client, path string, logger *zap.Logger) *Client[T] {
	return &Client[T]{
		http:     http,
		path:     path,
		resource: strings.Trim(path, "/"),
		log:      logger,
	}
}

// ListAll returns a nil slice alongside any error, so callers can treat
// a failed list like an empty one.
func (c *Client[T]) ListAll(ctx context.Context) ([]T, error) {
	return c.ListAt(ctx, "")
}

// ListAt lists a collection nested under the resource path, e.g. "/3/enrollments".
func (c *Client[T]) ListAt(ctx context.Context, subPath string) ([]T, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.log.Info("Client.ListAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, c.resource),
	)

	resp, err := c.http.R().SetContext(ctx).Get(c.path + subPath)
	if err != nil {
		c.log.Error("Client.ListAll error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, c.resource),
			zap.Error(err),
		)
		return nil, c.sendError(err)
	}
	if resp.IsError() {
		c.log.Error("Client.ListAll backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, c.resource),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode()),
			zap.String(constvars.LoggingBackendDetailKey, backendDetail(resp.Body())),
		)
		return nil, exceptions.ErrBackendStatus(resp.StatusCode(), c.resource)
	}

	var records []T
	if len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), &records); err != nil {
			c.log.Error("Client.ListAll error decoding response",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceKey, c.resource),
				zap.Error(err),
			)
			return nil, exceptions.ErrDecodeResponse(err, c.resource)
		}
	}

	c.log.Info("Client.ListAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, c.resource),
		zap.Int(constvars.LoggingCountKey, len(records)),
	)
	return records, nil
}

// GetOne returns an error wrapping exceptions.ErrResourceNotFound when the
// backend answers 404.
func (c *Client[T]) GetOne(ctx context.Context, id int64) (*T, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.log.Info("Client.GetOne called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, c.resource),
		zap.Int64(constvars.LoggingResourceIDKey, id),
	)

	resp, err := c.http.R().SetContext(ctx).Get(c.itemPath(id))
	if err != nil {
		c.log.Error("Client.GetOne error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, c.sendError(err)
	}
	if resp.StatusCode() == constvars.StatusNotFound {
		c.log.Info("Client.GetOne not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, c.resource),
			zap.Int64(constvars.LoggingResourceIDKey, id),
		)
		return nil, exceptions.ErrNotFound(c.resource)
	}
	if resp.IsError() {
		c.log.Error("Client.GetOne backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode()),
			zap.String(constvars.LoggingBackendDetailKey, backendDetail(resp.Body())),
		)
		return nil, exceptions.ErrBackendStatus(resp.StatusCode(), c.resource)
	}

	record, err := c.decodeOne(resp.Body())
	if err != nil {
		c.log.Error("Client.GetOne error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrNotFound(c.resource)
	}

	c.log.Info("Client.GetOne succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, c.resource),
		zap.Int64(constvars.LoggingResourceIDKey, id),
	)
	return record, nil
}

func (c *Client[T]) Create(ctx context.Context, body interface{}) (*T, error) {
	return c.write(ctx, "Client.Create", constvars.MethodPost, c.path, body)
}

func (c *Client[T]) Update(ctx context.Context, id int64, body interface{}) (*T, error) {
	return c.write(ctx, "Client.Update", constvars.MethodPut, c.itemPath(id), body)
}

func (c *Client[T]) Delete(ctx context.Context, id int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.log.Info("Client.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, c.resource),
		zap.Int64(constvars.LoggingResourceIDKey, id),
	)

	resp, err := c.http.R().SetContext(ctx).Delete(c.itemPath(id))
	if err != nil {
		c.log.Error("Client.Delete error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return c.sendError(err)
	}
	if resp.StatusCode() == constvars.StatusNotFound {
		return exceptions.ErrNotFound(c.resource)
	}
	if resp.IsError() {
		c.log.Error("Client.Delete backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode()),
			zap.String(constvars.LoggingBackendDetailKey, backendDetail(resp.Body())),
		)
		return exceptions.ErrBackendStatus(resp.StatusCode(), c.resource)
	}

	c.log.Info("Client.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, c.resource),
		zap.Int64(constvars.LoggingResourceIDKey, id),
	)
	return nil
}

func (c *Client[T]) write(ctx context.Context, operation, method, url string, body interface{}) (*T, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, c.resource),
	)

	resp, err := c.http.R().SetContext(ctx).SetBody(body).Execute(method, url)
	if err != nil {
		c.log.Error(operation+" error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, c.sendError(err)
	}
	if resp.StatusCode() == constvars.StatusNotFound {
		return nil, exceptions.ErrNotFound(c.resource)
	}
	if resp.IsError() {
		c.log.Error(operation+" backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode()),
			zap.String(constvars.LoggingBackendDetailKey, backendDetail(resp.Body())),
		)
		return nil, exceptions.ErrBackendStatus(resp.StatusCode(), c.resource)
	}

	record, err := c.decodeOne(resp.Body())
	if err != nil {
		c.log.Error(operation+" error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if record == nil {
		record = new(T)
	}

	c.log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, c.resource),
	)
	return record, nil
}

// decodeOne returns nil for an empty or null body.
func (c *Client[T]) decodeOne(body []byte) (*T, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}
	record := new(T)
	if err := json.Unmarshal(body, record); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, c.resource)
	}
	return record, nil
}

func (c *Client[T]) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", c.path, id)
}

func (c *Client[T]) sendError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return exceptions.ErrSendHTTPRequest(err, c.resource)
}

// backendDetail pulls the human readable reason out of an error body, if any.
func backendDetail(body []byte) string {
	for _, path := range []string{"detail", "error", "message"} {
		if value := gjson.GetBytes(body, path); value.Exists() {
			return value.String()
		}
	}
	return ""
}
