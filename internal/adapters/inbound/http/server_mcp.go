package http

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const recommendToolName = "recommend_blog_posts"

// NewMCPServer exposes the recommendation use case as an MCP tool.
func (api MarvinServer) NewMCPServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "marvin", Version: "v1.0.0"}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        recommendToolName,
		Description: "Recommends up to three Prefect blog posts relevant to a query.",
	}, api.recommendTool)

	return server
}

func (api MarvinServer) recommendTool(ctx context.Context, _ *mcp.CallToolRequest, in RecommendationsReq) (*mcp.CallToolResult, RecommendationsResp, error) {
	recs, err := api.QueryBlogsUseCase.Query(ctx, in.Query, in.Collection)
	if err != nil {
		return nil, RecommendationsResp{}, err
	}
	return nil, toRecommendations(recs), nil
}

// MCPHandler serves the MCP streamable HTTP transport.
func (api MarvinServer) MCPHandler() http.Handler {
	server := api.NewMCPServer()
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}
