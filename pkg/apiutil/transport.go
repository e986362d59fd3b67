// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package apiutil

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/absmach/smppc/pkg/errors"
	kithttp "github.com/go-kit/kit/transport/http"
)

// LoggingErrorEncoder logs rejected requests before enc writes the error.
func LoggingErrorEncoder(logger *slog.Logger, enc kithttp.ErrorEncoder) kithttp.ErrorEncoder {
	return func(ctx context.Context, err error, w http.ResponseWriter) {
		if errors.Contains(err, ErrValidation) {
			logger.Warn("Rejected composer request", slog.Any("error", err))
		}
		enc(ctx, err, w)
	}
}

// ReadStringQuery returns the single value of query parameter key, or def
// when it is absent.
func ReadStringQuery(r *http.Request, key, def string) (string, error) {
	vals := r.URL.Query()[key]
	switch len(vals) {
	case 0:
		return def, nil
	case 1:
		return vals[0], nil
	default:
		return "", ErrInvalidQueryParams
	}
}

type integer interface {
	int64 | uint64
}

// ReadNumQuery parses the single value of query parameter key as an integer.
func ReadNumQuery[N integer](r *http.Request, key string, def N) (N, error) {
	val, err := ReadStringQuery(r, key, "")
	if err != nil || val == "" {
		return def, err
	}

	switch any(def).(type) {
	case int64:
		v, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0, errors.Wrap(ErrInvalidQueryParams, err)
		}
		return N(v), nil
	default:
		v, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return 0, errors.Wrap(ErrInvalidQueryParams, err)
		}
		return N(v), nil
	}
}

// ReadUnixQuery reads query parameter key as unix seconds. An absent or zero
// value yields the zero time, which leaves the bound open.
func ReadUnixQuery(r *http.Request, key string) (time.Time, error) {
	sec, err := ReadNumQuery[int64](r, key, 0)
	if err != nil {
		return time.Time{}, err
	}
	if sec < 0 || sec > math.MaxInt32 {
		return time.Time{}, ErrInvalidTimeFormat
	}
	if sec == 0 {
		return time.Time{}, nil
	}

	return time.Unix(sec, 0).UTC(), nil
}
