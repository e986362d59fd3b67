// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/absmach/smppc"
	"github.com/absmach/smppc/coding"
	"github.com/absmach/smppc/composer"
	"github.com/absmach/smppc/pkg/apiutil"
	"github.com/absmach/smppc/pkg/errors"
	svcerr "github.com/absmach/smppc/pkg/errors/service"
)

const (
	OffsetKey = "offset"
	LimitKey  = "limit"
	KindKey   = "kind"
	FromKey   = "from"
	ToKey     = "to"
	DirKey    = "dir"

	DefOffset = 0
	DefLimit  = 10
	DefDir    = "desc"

	MaxLimitSize = 100
	AscDir       = "asc"
	DescDir      = "desc"

	// ContentType represents JSON content type.
	ContentType = "application/json"
)

// EncodeResponse encodes successful response.
func EncodeResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	if ar, ok := response.(smppc.Response); ok {
		for k, v := range ar.Headers() {
			w.Header().Set(k, v)
		}
		w.Header().Set("Content-Type", ContentType)
		w.WriteHeader(ar.Code())

		if ar.Empty() {
			return nil
		}
	}

	return json.NewEncoder(w).Encode(response)
}

// EncodeError encodes an error response.
func EncodeError(_ context.Context, err error, w http.ResponseWriter) {
	var wrapper error
	if errors.Contains(err, apiutil.ErrValidation) {
		wrapper, err = errors.Unwrap(err)
	}

	w.Header().Set("Content-Type", ContentType)
	switch {
	case errors.Contains(err, svcerr.ErrMalformedEntity),
		errors.Contains(err, errors.ErrMalformedEntity),
		errors.Contains(err, apiutil.ErrValidation),
		errors.Contains(err, apiutil.ErrInvalidQueryParams),
		errors.Contains(err, apiutil.ErrLimitSize),
		errors.Contains(err, apiutil.ErrInvalidDirection),
		errors.Contains(err, apiutil.ErrInvalidTimeFormat),
		errors.Contains(err, apiutil.ErrInvalidTimeRange),
		errors.Contains(err, apiutil.ErrInvalidEventKind),
		errors.Contains(err, apiutil.ErrMissingGsmFeatures),
		errors.Contains(err, apiutil.ErrMissingURL),
		errors.Contains(err, apiutil.ErrMissingSystemID),
		errors.Contains(err, composer.ErrMalformedEnvelope),
		errors.Contains(err, composer.ErrMalformedBindConfig),
		errors.Contains(err, composer.ErrInvalidGsmFeatures),
		errors.Contains(err, composer.ErrEmptyMessage),
		errors.Contains(err, composer.ErrTooManyParts),
		errors.Contains(err, coding.ErrInvalidEncoding),
		errors.Contains(err, coding.ErrUnrepresentableCharacter),
		errors.Contains(err, coding.ErrCapacityExhausted):
		err = unwrap(err)
		w.WriteHeader(http.StatusBadRequest)

	case errors.Contains(err, composer.ErrGsmFeaturesForced),
		errors.Contains(err, composer.ErrAlreadyBound),
		errors.Contains(err, composer.ErrNotBound),
		errors.Contains(err, svcerr.ErrConflict),
		errors.Contains(err, errors.ErrConflict):
		err = unwrap(err)
		w.WriteHeader(http.StatusConflict)

	case errors.Contains(err, svcerr.ErrNotFound):
		err = unwrap(err)
		w.WriteHeader(http.StatusNotFound)

	case errors.Contains(err, composer.ErrBind):
		err = unwrap(err)
		w.WriteHeader(http.StatusBadGateway)

	case errors.Contains(err, svcerr.ErrCreateEntity),
		errors.Contains(err, svcerr.ErrViewEntity):
		err = unwrap(err)
		w.WriteHeader(http.StatusUnprocessableEntity)

	case errors.Contains(err, apiutil.ErrUnsupportedContentType):
		err = unwrap(err)
		w.WriteHeader(http.StatusUnsupportedMediaType)

	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	if wrapper != nil {
		err = errors.Wrap(wrapper, err)
	}

	if errorVal, ok := err.(errors.Error); ok {
		if err := json.NewEncoder(w).Encode(errorVal); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}

func unwrap(err error) error {
	wrapper, err := errors.Unwrap(err)
	if wrapper != nil {
		return wrapper
	}
	return err
}
