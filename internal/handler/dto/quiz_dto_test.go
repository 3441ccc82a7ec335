package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

func TestQuizCategoryRef_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantID   *uint
		wantNull bool
	}{
		{name: "число", body: `{"id": 3, "type": "Art"}`, wantID: uintPtr(3)},
		{name: "строка", body: `{"id": "2"}`, wantID: uintPtr(2)},
		{name: "ноль - все категории", body: `{"id": 0}`, wantID: uintPtr(0)},
		{name: "null", body: `{"id": null}`, wantNull: true},
		{name: "нет ключа", body: `{"type": "Art"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref QuizCategoryRef
			require.NoError(t, json.Unmarshal([]byte(tt.body), &ref))

			assert.Equal(t, tt.wantNull, ref.NullID)
			if tt.wantID == nil {
				assert.Nil(t, ref.ID)
				return
			}
			require.NotNil(t, ref.ID)
			assert.Equal(t, *tt.wantID, ref.ID.Uint())
		})
	}
}

func TestQuizCategoryRef_UnmarshalJSON_InvalidID(t *testing.T) {
	var ref QuizCategoryRef
	assert.Error(t, json.Unmarshal([]byte(`{"id": "art"}`), &ref))
	assert.Error(t, json.Unmarshal([]byte(`{"id": -1}`), &ref))
}

func TestPlayQuizRequest_Validate(t *testing.T) {
	var withNull PlayQuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"previous_questions": [], "quiz_category": {"id": null}}`), &withNull))
	assert.NoError(t, withNull.Validate())
	assert.True(t, withNull.NoCategory())

	var missingID PlayQuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"previous_questions": [], "quiz_category": {"type": "Art"}}`), &missingID))
	assert.ErrorIs(t, missingID.Validate(), apperrors.ErrMalformedInput)

	var regular PlayQuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"previous_questions": [1], "quiz_category": {"id": "4"}}`), &regular))
	assert.NoError(t, regular.Validate())
	assert.False(t, regular.NoCategory())
	assert.Equal(t, uint(4), regular.CategoryID())
	assert.Equal(t, []uint{1}, regular.Previous())
}

func uintPtr(v uint) *uint {
	return &v
}
