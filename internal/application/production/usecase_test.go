package production_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/production-stock-api/internal/application/production"
)

// Sin generador de reportes configurado, SuggestPDF debe fallar con error, no
// con panic, y sin tocar los repositorios.
func TestSuggestPDF_SinGenerador_RetornaError(t *testing.T) {
	uc := production.NewSuggestionUseCase(nil, nil, nil, nil)

	out, err := uc.SuggestPDF(context.Background())

	assert.Error(t, err, "sin ReportGenerator debe retornar error")
	assert.Nil(t, out)
}
