package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/kenone20/domainogen/pkg/logger"
	"github.com/kenone20/domainogen/pkg/requestctx"
)

const sessionName = "domainogen_session"
const sessionOwnerIDKey = "owner_id"

// EnsureOwner is a chi middleware that binds every request to an anonymous
// owner. History and favorites are scoped by this owner.
//
// An existing session cookie carrying a valid owner_id is reused. Otherwise a
// fresh owner ID is minted, stored in the session, and the cookie is written
// before the handler runs. A session that cannot be saved still gets an owner
// for the current request so reads keep working; it simply will not persist.
//
// After this middleware, handlers can safely call requestctx.OwnerIDFromCtx(r.Context()).
func EnsureOwner(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				// gorilla returns a usable fresh session alongside decode errors.
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
			}

			ownerID, ok := ownerFromSession(session)
			if !ok {
				ownerID = uuid.New()
				if session != nil {
					session.Values[sessionOwnerIDKey] = ownerID.String()
					if err := session.Save(r, w); err != nil {
						log.WarnContext(r.Context(), "failed to persist session", "error", err)
					}
				}
			}

			ctx := requestctx.WithOwnerID(r.Context(), ownerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ownerFromSession(session *sessions.Session) (uuid.UUID, bool) {
	if session == nil {
		return uuid.Nil, false
	}
	raw, ok := session.Values[sessionOwnerIDKey].(string)
	if !ok || raw == "" {
		return uuid.Nil, false
	}
	ownerID, err := uuid.Parse(raw)
	if err != nil || ownerID == uuid.Nil {
		return uuid.Nil, false
	}
	return ownerID, true
}
