// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Every response carries the `success` boolean the HeroFlicks mobile client
// branches on, plus resource-specific top-level keys (`comics`, `comic`,
// `tags`, `message`, ...). Error responses always carry `success: false`
// together with `error` and `code`. This consistency lets the client parse
// data robustly without inspecting HTTP status codes alone.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/ctxkey"
)

// E is a free-form set of top-level response fields merged into the envelope.
//
// Example:
//
//	respond.Success(writer, http.StatusOK, respond.E{"comics": comics, "message": msg})
type E map[string]any

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// Success writes a response with `success: true` plus the provided fields.
// Fields named "success" in the input are overwritten.
func Success(writer http.ResponseWriter, statusCode int, fields E) {
	body := make(map[string]any, len(fields)+1)
	for key, value := range fields {
		body[key] = value
	}
	body["success"] = true
	JSON(writer, statusCode, body)
}

// OK writes a 200 OK success response with the provided fields.
func OK(writer http.ResponseWriter, fields E) {
	Success(writer, http.StatusOK, fields)
}

// Created writes a 201 Created success response with the provided fields.
func Created(writer http.ResponseWriter, fields E) {
	Success(writer, http.StatusCreated, fields)
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error converts any Go error into a standardized JSON API error response.
//
// The body is `{success: false, error, code, details?}`. Unexpected (non
// [apperr.AppError]) failures are logged with the per-request logger and
// masked as internal errors so database and filesystem details never leak.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		logger := getLoggerFromContext(request)
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", getRequestIDFromContext(request)),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := getLoggerFromContext(request)
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", getRequestIDFromContext(request)),
			slog.Any("cause", appError.Cause),
		)
	}

	body := map[string]any{
		"success": false,
		"error":   appError.Message,
		"code":    appError.Code,
	}
	if len(appError.Details) > 0 {
		body["details"] = appError.Details
	}
	JSON(writer, appError.HTTPStatus, body)
}

// getLoggerFromContext extracts the per-request logger.
func getLoggerFromContext(request *http.Request) *slog.Logger {
	if logger, ok := request.Context().Value(ctxkey.KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// getRequestIDFromContext extracts the X-Request-ID for log correlation.
func getRequestIDFromContext(request *http.Request) string {
	if id, ok := request.Context().Value(ctxkey.KeyRequestID).(string); ok {
		return id
	}
	return ""
}
