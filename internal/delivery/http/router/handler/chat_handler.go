package handler

import (
	"log/slog"
	"net/http"

	"quicksell/internal/delivery/http/response"
	"quicksell/internal/delivery/http/serializer"
	"quicksell/internal/errors"
	"quicksell/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC    usecase.ChatUsecase
	MessageUC usecase.MessageUsecase
	Logger    *slog.Logger
}

// ChatHandler serves chats and the messages inside them.
type ChatHandler struct {
	chatUC    usecase.ChatUsecase
	messageUC usecase.MessageUsecase
	logger    *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		chatUC:    params.ChatUC,
		messageUC: params.MessageUC,
		logger:    params.Logger,
	}
}

// CreateChat opens a conversation about a listing, or returns the existing one.
func (h *ChatHandler) CreateChat(c echo.Context) error {
	userID, err := viewerID(c)
	if err != nil {
		return err
	}

	var req serializer.CreateChatRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	output, err := h.chatUC.CreateChat(c.Request().Context(), userID, req.ToInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, serializer.NewChatResponse(output, userID), "")
}

func (h *ChatHandler) GetChat(c echo.Context) error {
	userID, chatID, err := h.chatParams(c)
	if err != nil {
		return err
	}

	output, err := h.chatUC.GetChat(c.Request().Context(), userID, chatID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.NewChatResponse(output, userID), "")
}

func (h *ChatHandler) ListChats(c echo.Context) error {
	userID, err := viewerID(c)
	if err != nil {
		return err
	}

	outputs, err := h.chatUC.ListChats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.NewChatResponses(outputs, userID), "")
}

// SendMessage posts a message and notifies the other participant.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	userID, chatID, err := h.chatParams(c)
	if err != nil {
		return err
	}

	var req serializer.SendMessageRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	message, err := h.messageUC.SendMessage(c.Request().Context(), userID, chatID, &usecase.SendMessageInput{Text: req.Text})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, serializer.NewMessageResponse(message, userID), "")
}

// ListMessages pages through a chat, newest first.
func (h *ChatHandler) ListMessages(c echo.Context) error {
	userID, chatID, err := h.chatParams(c)
	if err != nil {
		return err
	}

	var page usecase.PageInput
	err = echo.QueryParamsBinder(c).
		Int("page", &page.Page).
		Int("page_size", &page.PageSize).
		BindError()
	if err != nil {
		return queryError(err)
	}

	messages, err := h.messageUC.ListMessages(c.Request().Context(), userID, chatID, &page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.NewMessageResponses(messages, userID), "")
}

// MarkRead marks the other participant's messages as read.
func (h *ChatHandler) MarkRead(c echo.Context) error {
	userID, chatID, err := h.chatParams(c)
	if err != nil {
		return err
	}

	updated, err := h.messageUC.MarkRead(c.Request().Context(), userID, chatID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &serializer.MarkReadResponse{Updated: updated}, "")
}

func (h *ChatHandler) chatParams(c echo.Context) (userID, chatID uuid.UUID, err error) {
	if userID, err = viewerID(c); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if chatID, err = pathID(c); err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return userID, chatID, nil
}
