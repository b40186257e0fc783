package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"

	"sui-tx-explainer/internal/svc"
)

// ExplainRequest 只有路径参数 digest
type ExplainRequest struct {
	Digest string `path:"digest"`
}

// RegisterHandlers 注册 HTTP 路由
func RegisterHandlers(server *rest.Server, svcCtx *svc.ServiceContext) {
	server.AddRoutes([]rest.Route{
		{
			Method:  http.MethodGet,
			Path:    "/api/tx/:digest",
			Handler: explainHandler(svcCtx),
		},
	})
}

// explainHandler 是 digest → 解释结果的唯一 HTTP 入口，不含任何解读逻辑
func explainHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ExplainRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		expl, err := svcCtx.Explainer.ExplainByDigest(r.Context(), req.Digest)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, expl)
	}
}
