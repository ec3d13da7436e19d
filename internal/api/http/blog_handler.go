package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"carrental-backend/internal/domain"
)

func (h *Handler) ListPublishedPosts(w http.ResponseWriter, r *http.Request) {
	page, size, err := pagination(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = "en"
	}
	posts, total, err := h.svc.Blog.ListPublished(r.Context(), locale, page, size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.BlogPost]{Items: posts, Total: total, Page: page})
}

func (h *Handler) GetPublishedPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	post, err := h.svc.Blog.GetPublished(r.Context(), vars["locale"], vars["slug"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *Handler) AdminListPosts(w http.ResponseWriter, r *http.Request) {
	page, size, err := pagination(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	posts, total, err := h.svc.Blog.ListPosts(r.Context(), page, size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.BlogPost]{Items: posts, Total: total, Page: page})
}

func (h *Handler) AdminGetPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	post, err := h.svc.Blog.GetPost(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *Handler) AdminCreatePost(w http.ResponseWriter, r *http.Request) {
	var post domain.BlogPost
	if err := decodeJSON(w, r, &post); err != nil {
		writeError(w, r, err)
		return
	}
	post.ID = 0
	if err := h.svc.Blog.CreatePost(r.Context(), &post); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

func (h *Handler) AdminUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var post domain.BlogPost
	if err := decodeJSON(w, r, &post); err != nil {
		writeError(w, r, err)
		return
	}
	post.ID = id
	if err := h.svc.Blog.UpdatePost(r.Context(), &post); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *Handler) AdminDeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Blog.DeletePost(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
