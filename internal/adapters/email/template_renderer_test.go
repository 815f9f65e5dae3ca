package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festivalcms/internal/domain"
)

func TestTemplateRenderer_Contact(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.ContactEmailData{
		Name:    "Ana <script>",
		Email:   "ana@example.com",
		Message: "When does the festival start?",
	}

	subject, html, text, err := r.Render("contact", data)
	require.NoError(t, err)
	assert.Equal(t, "New contact message from Ana <script>", subject)
	assert.Contains(t, html, "Ana &lt;script&gt;")
	assert.NotContains(t, html, "Phone")
	assert.Contains(t, text, "Email: ana@example.com")
	assert.Contains(t, text, "When does the festival start?")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	_, _, _, err := NewTemplateRenderer().Render("welcome", nil)
	require.Error(t, err)
}
