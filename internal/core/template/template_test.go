package template_test

import (
	"errors"
	"testing"

	"github.com/shopmart/backend/internal/core/domain"
	"github.com/shopmart/backend/internal/core/template"
	"github.com/stretchr/testify/assert"
)

func TestTemplate_Scalars(t *testing.T) {
	tpl, err := template.Parse("Hello {{name}}, your order {{number}} is {{status}}.")
	assert.NoError(t, err)

	got := tpl.Render(map[string]any{
		"name":   "Asha",
		"number": "ORD-1",
		"status": "pending",
	})
	assert.Equal(t, "Hello Asha, your order ORD-1 is pending.", got)
}

func TestTemplate_MissingAndNilKeys(t *testing.T) {
	tpl, err := template.Parse("[{{missing}}][{{null}}]")
	assert.NoError(t, err)

	got := tpl.Render(map[string]any{"null": nil})
	assert.Equal(t, "[][]", got)
}

func TestTemplate_NonStringValues(t *testing.T) {
	tpl, err := template.Parse("{{count}} items, total {{total}}")
	assert.NoError(t, err)

	got := tpl.Render(map[string]any{"count": 3, "total": 1300.5})
	assert.Equal(t, "3 items, total 1300.5", got)
}

func TestTemplate_EachLoop(t *testing.T) {
	tpl, err := template.Parse("Items:\n{{#each items}}- {{name}} x{{quantity}}\n{{/each}}Done")
	assert.NoError(t, err)

	got := tpl.Render(map[string]any{
		"items": []map[string]any{
			{"name": "Sneakers", "quantity": 2},
			{"name": "Cap", "quantity": 1},
		},
	})
	assert.Equal(t, "Items:\n- Sneakers x2\n- Cap x1\nDone", got)
}

func TestTemplate_EachMissingOrNotSequence(t *testing.T) {
	tpl, err := template.Parse("<{{#each items}}{{name}}{{/each}}>")
	assert.NoError(t, err)

	assert.Equal(t, "<>", tpl.Render(map[string]any{}))
	assert.Equal(t, "<>", tpl.Render(map[string]any{"items": "not a list"}))
	assert.Equal(t, "<>", tpl.Render(map[string]any{"items": 42}))
}

func TestTemplate_ParseErrors(t *testing.T) {
	cases := []string{
		"{{#each items}}{{#each nested}}{{/each}}{{/each}}",
		"{{#each items}}never closed",
		"stray {{/each}} close",
		"unclosed {{tag",
		"empty {{}} tag",
		"{{#each}}{{/each}}",
	}
	for _, src := range cases {
		_, err := template.Parse(src)
		assert.Error(t, err, "source: %q", src)
	}
}

func TestTemplate_RenderDeterministic(t *testing.T) {
	tpl, err := template.Parse("{{a}}{{#each xs}}{{v}}{{/each}}{{b}}")
	assert.NoError(t, err)

	data := map[string]any{
		"a":  "1",
		"b":  "2",
		"xs": []map[string]any{{"v": "x"}, {"v": "y"}},
	}
	assert.Equal(t, tpl.Render(data), tpl.Render(data))
}

func TestRegistry_UnknownTemplate(t *testing.T) {
	r, err := template.NewRegistry(nil)
	assert.NoError(t, err)

	_, err = r.Render("no-such-template", nil)
	assert.True(t, errors.Is(err, domain.ErrTemplateNotFound))
}

func TestRegistry_Render(t *testing.T) {
	r, err := template.NewRegistry(map[string]template.Definition{
		"greeting": {
			Subject: "Hi {{name}}",
			HTML:    "<b>{{name}}</b>",
			Text:    "Hi {{name}}",
		},
	})
	assert.NoError(t, err)

	rendered, err := r.Render("greeting", map[string]any{"name": "Asha"})
	assert.NoError(t, err)
	assert.Equal(t, "Hi Asha", rendered.Subject)
	assert.Equal(t, "<b>Asha</b>", rendered.HTML)
	assert.Equal(t, "Hi Asha", rendered.Text)
}

func TestDefaultRegistry_AllTemplatesRender(t *testing.T) {
	r := template.DefaultRegistry()

	for _, id := range []string{
		template.OrderConfirmation,
		template.OrderShipped,
		template.OrderDelivered,
		template.Welcome,
	} {
		rendered, err := r.Render(id, map[string]any{"customerName": "Asha", "orderNumber": "ORD-1"})
		assert.NoError(t, err, "template %s", id)
		assert.NotEmpty(t, rendered.Subject, "template %s", id)
		assert.NotEmpty(t, rendered.Text, "template %s", id)
		assert.Contains(t, rendered.Text, "Asha", "template %s", id)
	}
}
