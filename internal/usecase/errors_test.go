package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/nexus-prive/internal/entity"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{entity.ErrLeadNotFound, CodeLeadNotFound},
		{fmt.Errorf("wrapped: %w", entity.ErrDuplicateLead), CodeDuplicateLead},
		{entity.ErrUnauthorized, CodeUnauthorized},
		{entity.ErrInvalidStatus, CodeInvalidStatus},
		{entity.ErrInvalidRole, CodeInvalidRole},
		{entity.ErrTransitionNotAllowed, CodeTransitionNotAllowed},
	}
	for _, c := range cases {
		var de *DomainError
		assert.ErrorAs(t, classify(c.err), &de)
		assert.Equal(t, c.code, de.Code)
		assert.ErrorIs(t, de, c.err)
	}

	raw := errors.New("EOF")
	te := classify(raw)
	assert.True(t, IsTechnicalError(te))
	assert.ErrorIs(t, te, raw)

	assert.Nil(t, classify(nil))

	already := &DomainError{Code: CodeValidation, Message: "x"}
	assert.Same(t, already, classify(already))
}
