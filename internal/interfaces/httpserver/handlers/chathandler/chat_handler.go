package chathandler

import (
	"bufio"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	domainmodel "model-gateway/services/gemini-adapter/internal/domain/model"
	"model-gateway/services/gemini-adapter/internal/infrastructure/logger"
	"model-gateway/services/gemini-adapter/internal/infrastructure/metrics"
	"model-gateway/services/gemini-adapter/internal/interfaces/httpserver/responses"
	"model-gateway/services/gemini-adapter/internal/utils/httpclients/chat"
	"model-gateway/services/gemini-adapter/internal/utils/platformerrors"
)

const (
	scannerInitialBuffer = 12 * 1024
	scannerMaxBuffer     = 10 * 1024 * 1024
)

// ChatHandler proxies chat completions to the Gemini compatibility endpoint.
type ChatHandler struct {
	chatClient     *chat.ChatCompletionClient
	catalogService *domainmodel.CatalogService
	credentials    domainmodel.CredentialProvider
	provider       domainmodel.Provider
}

func NewChatHandler(
	chatClient *chat.ChatCompletionClient,
	catalogService *domainmodel.CatalogService,
	credentials domainmodel.CredentialProvider,
	provider domainmodel.Provider,
) *ChatHandler {
	return &ChatHandler{
		chatClient:     chatClient,
		catalogService: catalogService,
		credentials:    credentials,
		provider:       provider,
	}
}

// CreateChatCompletion handles POST /v1/chat/completions for both streaming
// and non-streaming requests.
func (h *ChatHandler) CreateChatCompletion(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var request openai.ChatCompletionRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid chat completion request", "9b3e1f6d-2a74-4c85-b196-d03f8e7a5c42")
		return
	}

	if request.Model == "" {
		if defaultModel, ok := h.catalogService.DefaultModel(h.catalogService.ListModels(ctx)); ok {
			request.Model = defaultModel.ID
		}
	}
	catalogModel, ok := h.catalogService.FindModel(ctx, request.Model)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeNotFound, "unknown model "+request.Model, "6d4f8a2b-e1c9-4073-8b5a-f92e0d7c6b1a")
		return
	}
	endpointURL := h.provider.ResolveEndpointURL(catalogModel)

	apiKey, ok := h.credentials.APIKey(ctx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "gemini api key is not configured", "0e2c4a68-b1d3-4f57-9681-a0c2e4f6b8d0")
		return
	}

	// Expose request attributes to the metrics middleware.
	reqCtx.Set("model", request.Model)
	reqCtx.Set("stream", request.Stream)

	if request.Stream {
		h.streamCompletion(reqCtx, endpointURL, apiKey, request)
		return
	}

	start := time.Now()
	resp, err := h.chatClient.CreateChatCompletion(ctx, endpointURL, apiKey, request)
	if err != nil {
		responses.HandleError(reqCtx, err, "chat completion failed")
		return
	}
	metrics.RecordCompletionDuration(request.Model, false, time.Since(start).Seconds())

	reqCtx.JSON(http.StatusOK, resp)
}

// streamCompletion relays the upstream SSE body line by line, flushing after
// each event so clients see tokens as they arrive.
func (h *ChatHandler) streamCompletion(reqCtx *gin.Context, endpointURL, apiKey string, request openai.ChatCompletionRequest) {
	ctx := reqCtx.Request.Context()
	start := time.Now()

	body, err := h.chatClient.CreateChatCompletionStream(ctx, endpointURL, apiKey, request, chat.WithAcceptEncodingIdentity())
	if err != nil {
		responses.HandleError(reqCtx, err, "streaming chat completion failed")
		return
	}
	defer body.Close()

	metrics.IncrementActiveStreams(request.Model)
	defer metrics.DecrementActiveStreams(request.Model)
	defer func() {
		metrics.RecordCompletionDuration(request.Model, true, time.Since(start).Seconds())
	}()

	reqCtx.Header("Content-Type", "text/event-stream")
	reqCtx.Header("Cache-Control", "no-cache")
	reqCtx.Header("Connection", "keep-alive")
	reqCtx.Writer.WriteHeaderNow()

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, scannerInitialBuffer), scannerMaxBuffer)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if _, err := reqCtx.Writer.Write(append(scanner.Bytes(), '\n')); err != nil {
			log := logger.GetLogger()
			log.Warn().Err(err).Msg("client disconnected during stream")
			return
		}
		reqCtx.Writer.Flush()
	}

	if err := scanner.Err(); err != nil {
		log := logger.GetLogger()
		log.Error().Err(err).Msg("upstream stream read failed")
	}
}
