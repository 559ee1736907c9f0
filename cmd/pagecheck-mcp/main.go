package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// resultResponse mirrors the Pagecheck API response model.
type resultResponse struct {
	Status                  string `json:"status"`
	URL                     string `json:"url"`
	Message                 string `json:"message"`
	SearchTextInWebsiteHTML *struct {
		Found   bool   `json:"found"`
		Message string `json:"message"`
	} `json:"searchTextInWebsiteHtml"`
	FindSpecificLinksInDiv *struct {
		LinksFound []struct {
			Text string `json:"text"`
			Href string `json:"href"`
		} `json:"linksFound"`
		Message string `json:"message"`
	} `json:"findSpecificLinksInDiv"`
}

func main() {
	apiURL := os.Getenv("PAGECHECK_API_URL")
	if apiURL == "" {
		apiURL = "http://127.0.0.1:8080"
	}
	apiKey := os.Getenv("PAGECHECK_API_KEY")

	s := server.NewMCPServer(
		"pagecheck",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	checkPageTool := mcp.NewTool("check_page",
		mcp.WithDescription("Fetch a web page and check whether a phrase appears within a named section of its text. The section is located by a case-insensitive identifier substring."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The URL of the web page to inspect"),
		),
		mcp.WithString("search_text",
			mcp.Required(),
			mcp.Description("The phrase to look for inside the section"),
		),
		mcp.WithString("section_identifier",
			mcp.Required(),
			mcp.Description("Substring that identifies the section to search within"),
		),
	)
	s.AddTool(checkPageTool, handleCheckPage(apiURL, apiKey))

	findLinksTool := mcp.NewTool("find_links",
		mcp.WithDescription("Fetch a web page and extract hyperlinks from a container element whose visible text contains a substring, case-insensitively."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The URL of the web page to inspect"),
		),
		mcp.WithString("div_id",
			mcp.Required(),
			mcp.Description("The exact id attribute of the container element to search within"),
		),
		mcp.WithString("link_text",
			mcp.Required(),
			mcp.Description("Substring matched against each link's visible text"),
		),
	)
	s.AddTool(findLinksTool, handleFindLinks(apiURL, apiKey))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func handleCheckPage(apiURL, apiKey string) server.ToolHandlerFunc {
	client := &http.Client{Timeout: 60 * time.Second}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		pageURL, err := request.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError("url is required"), nil
		}
		searchText, err := request.RequireString("search_text")
		if err != nil {
			return mcp.NewToolResultError("search_text is required"), nil
		}
		sectionID, err := request.RequireString("section_identifier")
		if err != nil {
			return mcp.NewToolResultError("section_identifier is required"), nil
		}

		params := url.Values{}
		params.Set("url", pageURL)
		params.Set("searchText", searchText)
		params.Set("sectionIdentifier", sectionID)

		resp, err := apiGet(ctx, client, apiURL, apiKey, params)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if resp.SearchTextInWebsiteHTML == nil {
			return mcp.NewToolResultError("API response carried no section search outcome"), nil
		}
		out := resp.SearchTextInWebsiteHTML
		return mcp.NewToolResultText(fmt.Sprintf("found: %t\n%s", out.Found, out.Message)), nil
	}
}

func handleFindLinks(apiURL, apiKey string) server.ToolHandlerFunc {
	client := &http.Client{Timeout: 60 * time.Second}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		pageURL, err := request.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError("url is required"), nil
		}
		divID, err := request.RequireString("div_id")
		if err != nil {
			return mcp.NewToolResultError("div_id is required"), nil
		}
		linkText, err := request.RequireString("link_text")
		if err != nil {
			return mcp.NewToolResultError("link_text is required"), nil
		}

		params := url.Values{}
		params.Set("url", pageURL)
		params.Set("divId", divID)
		params.Set("linkTextToFind", linkText)

		resp, err := apiGet(ctx, client, apiURL, apiKey, params)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if resp.FindSpecificLinksInDiv == nil {
			return mcp.NewToolResultError("API response carried no link search result"), nil
		}

		var sb strings.Builder
		sb.WriteString(resp.FindSpecificLinksInDiv.Message)
		for _, l := range resp.FindSpecificLinksInDiv.LinksFound {
			sb.WriteString(fmt.Sprintf("\n- %s -> %s", l.Text, l.Href))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// apiGet calls GET /result on the Pagecheck API and decodes the envelope.
func apiGet(ctx context.Context, client *http.Client, apiURL, apiKey string, params url.Values) (*resultResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL+"/result?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	var result resultResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v", err)
	}

	if result.Status == "error" {
		return nil, fmt.Errorf("API error: %s", result.Message)
	}
	return &result, nil
}
