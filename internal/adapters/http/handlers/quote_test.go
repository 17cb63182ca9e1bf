package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/domain"
)

func quotePath(id uint64) string {
	return QuotesPath + "/" + strconv.FormatUint(id, 10)
}

func TestIndexHandler(t *testing.T) {
	env := newTestEnv(t)

	w := env.get(APIPrefix + "/")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.IndexResponse](t, w)
	assert.Equal(t, welcomeMessage, resp.Message)
	assert.False(t, resp.ShowRandomQuoteGenerator)

	env.quote("Simplicity is prerequisite for reliability.", nil)

	resp = decode[dto.IndexResponse](t, env.get(APIPrefix+"/"))
	assert.True(t, resp.ShowRandomQuoteGenerator)
}

func TestQuoteHandler_List(t *testing.T) {
	env := newTestEnv(t)
	first := env.quote("Test Quote 1", nil)
	env.quote("Test Quote 2", nil)

	tests := []struct {
		name     string
		query    string
		wantText []string
	}{
		{name: "no query lists all", query: "", wantText: []string{"Test Quote 1", "Test Quote 2"}},
		{name: "substring match", query: "1", wantText: []string{first.Text}},
		{name: "case insensitive", query: "test QUOTE", wantText: []string{"Test Quote 1", "Test Quote 2"}},
		{name: "no match is empty", query: "zebra", wantText: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.get(QuotesPath + "?q=" + url.QueryEscape(tt.query))
			require.Equal(t, http.StatusOK, w.Code)

			resp := decode[dto.QuoteListResponse](t, w)
			assert.Equal(t, tt.query, resp.Query)

			got := make([]string, 0, len(resp.Quotes))
			for _, q := range resp.Quotes {
				got = append(got, q.Text)
			}
			assert.Equal(t, tt.wantText, got)
		})
	}
}

func TestQuoteHandler_Random(t *testing.T) {
	env := newTestEnv(t)

	w := env.get(QuotesPath + "/random")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"quote":null,"noQuotes":true}`, w.Body.String())

	ids := map[uint64]bool{}
	for _, text := range []string{"one", "two", "three"} {
		ids[env.quote(text, nil).ID] = true
	}

	for range 10 {
		resp := decode[dto.RandomQuoteResponse](t, env.get(QuotesPath+"/random"))
		require.NotNil(t, resp.Quote)
		assert.False(t, resp.NoQuotes)
		assert.True(t, ids[resp.Quote.ID], "random quote %d is not in the store", resp.Quote.ID)
	}
}

func TestQuoteHandler_Get(t *testing.T) {
	env := newTestEnv(t)
	author := env.author("Grace", "Hopper")
	q := env.quote("It's easier to ask forgiveness than it is to get permission.", author)

	w := env.get(quotePath(q.ID))
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.QuoteResponse](t, w)
	assert.Equal(t, q.Text, resp.Text)
	require.NotNil(t, resp.Author)
	assert.Equal(t, "Grace Hopper", resp.Author.FullName)

	for _, path := range []string{quotePath(999), QuotesPath + "/abc", QuotesPath + "/0"} {
		w := env.get(path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, dto.ErrorCodeNotFound, decode[dto.ErrorResponse](t, w).Error.Code)
	}
}

func TestQuoteHandler_Forms(t *testing.T) {
	env := newTestEnv(t)
	author := env.author("Ada", "Lovelace")
	q := env.quote("The Analytical Engine weaves algebraic patterns.", author)

	newForm := decode[dto.FormResponse](t, env.get(QuotesPath+"/new"))
	assert.Equal(t, QuotesPath, newForm.Action)
	assert.Equal(t, dto.QuoteFormFields, newForm.Fields)
	assert.Equal(t, []dto.AuthorChoice{{ID: author.ID, Label: "Ada Lovelace"}}, newForm.Authors)

	w := env.get(quotePath(q.ID) + "/edit")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"text":"The Analytical Engine weaves algebraic patterns.","author":"`+
		strconv.FormatUint(author.ID, 10)+`","active":"false"}`,
		string(mustMarshal(t, decode[dto.FormResponse](t, w).Form)))

	assert.Equal(t, http.StatusNotFound, env.get(quotePath(999)+"/edit").Code)
}

func TestQuoteHandler_Create(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		env := newTestEnv(t)
		author := env.author("Linus", "Torvalds")

		w := env.sendJSON(http.MethodPost, QuotesPath,
			`{"text":"Talk is cheap. Show me the code.","author":`+strconv.FormatUint(author.ID, 10)+`,"active":true}`)

		require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())
		assert.Equal(t, QuotesPath, w.Header().Get("Location"))

		redirect := decode[dto.RedirectResponse](t, w)
		assert.Equal(t, QuotesPath, redirect.Redirect)

		stored, err := env.quotes.Get(context.Background(), redirect.ID)
		require.NoError(t, err)
		assert.Equal(t, "Talk is cheap. Show me the code.", stored.Text)
		assert.Equal(t, &author.ID, stored.AuthorID)
		assert.True(t, stored.Active)
		assert.False(t, stored.DateCreated.IsZero())
	})

	t.Run("urlencoded form", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.postForm(QuotesPath, url.Values{"text": {"  Less is more.  "}, "author": {""}, "active": {"on"}})

		require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())
		stored, err := env.quotes.Get(context.Background(), decode[dto.RedirectResponse](t, w).ID)
		require.NoError(t, err)
		assert.Equal(t, "Less is more.", stored.Text)
		assert.Nil(t, stored.AuthorID)
		assert.True(t, stored.Active)
	})

	invalid := []struct {
		name       string
		body       string
		wantFields map[string]string
	}{
		{
			name:       "missing text",
			body:       `{"text":"   "}`,
			wantFields: map[string]string{"text": domain.MsgRequired},
		},
		{
			name:       "unknown author",
			body:       `{"text":"ok","author":404}`,
			wantFields: map[string]string{"author": domain.MsgInvalidAuthor},
		},
		{
			name:       "unparseable author and active",
			body:       `{"text":"ok","author":"bob","active":"maybe"}`,
			wantFields: map[string]string{"author": domain.MsgInvalidAuthor, "active": dto.MsgInvalidBoolean},
		},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			w := env.sendJSON(http.MethodPost, QuotesPath, tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			resp := decode[struct {
				Error dto.ErrorDetail `json:"error"`
				Form  dto.QuoteForm   `json:"form"`
			}](t, w)
			assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
			assert.Equal(t, tt.wantFields, resp.Error.Details)

			quotes, err := env.quotes.List(context.Background(), "")
			require.NoError(t, err)
			assert.Empty(t, quotes, "nothing may be written on a rejected submission")
		})
	}

	t.Run("echoes the submission", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.postForm(QuotesPath, url.Values{"text": {""}, "author": {"7"}, "active": {"on"}})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"text":"","author":"7","active":"on"}`,
			string(mustMarshal(t, decode[map[string]any](t, w)["form"])))
	})

	t.Run("malformed body", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.sendJSON(http.MethodPost, QuotesPath, `{"text":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrorCodeBadRequest, decode[dto.ErrorResponse](t, w).Error.Code)
	})
}

func TestQuoteHandler_Update(t *testing.T) {
	env := newTestEnv(t)
	q := env.quote("Original text", nil)

	w := env.sendJSON(http.MethodPost, quotePath(q.ID), `{"text":"Updated text"}`)
	require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())
	assert.Equal(t, QuotesPath, w.Header().Get("Location"))

	stored, err := env.quotes.Get(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated text", stored.Text)
	assert.True(t, q.DateCreated.Equal(stored.DateCreated), "date_created must not change")

	t.Run("put is accepted", func(t *testing.T) {
		w := env.sendJSON(http.MethodPut, quotePath(q.ID), `{"text":"Put text","active":true}`)
		require.Equal(t, http.StatusSeeOther, w.Code)

		stored, err := env.quotes.Get(context.Background(), q.ID)
		require.NoError(t, err)
		assert.Equal(t, "Put text", stored.Text)
		assert.True(t, stored.Active)
	})

	t.Run("invalid leaves the record untouched", func(t *testing.T) {
		before, err := env.quotes.Get(context.Background(), q.ID)
		require.NoError(t, err)

		w := env.sendJSON(http.MethodPost, quotePath(q.ID), `{"text":"","active":false}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		after, err := env.quotes.Get(context.Background(), q.ID)
		require.NoError(t, err)
		assert.Equal(t, before.Text, after.Text)
		assert.Equal(t, before.Active, after.Active)
	})

	t.Run("missing record is not found even with a bad form", func(t *testing.T) {
		w := env.sendJSON(http.MethodPost, quotePath(999), `{"text":"x","author":"nope"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = env.sendJSON(http.MethodPost, quotePath(999), `{"text":"x"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestQuoteHandler_Delete(t *testing.T) {
	env := newTestEnv(t)
	q := env.quote("Ephemeral", nil)

	w := env.get(quotePath(q.ID) + "/delete")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, quotePath(q.ID)+"/delete", decode[dto.DeleteConfirmResponse](t, w).Action)

	// The confirmation step is read-only.
	_, err := env.quotes.Get(context.Background(), q.ID)
	require.NoError(t, err)

	w = env.postForm(quotePath(q.ID)+"/delete", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, QuotesPath, w.Header().Get("Location"))

	assert.Equal(t, http.StatusNotFound, env.get(quotePath(q.ID)).Code)
	assert.Equal(t, http.StatusNotFound, env.postForm(quotePath(q.ID)+"/delete", nil).Code)
	assert.Equal(t, http.StatusNotFound, env.get(quotePath(q.ID)+"/delete").Code)

	other := env.quote("Also ephemeral", nil)
	w = env.do(newRequest(http.MethodDelete, quotePath(other.ID)))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, http.StatusNotFound, env.get(quotePath(other.ID)).Code)
}
