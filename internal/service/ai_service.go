package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"go.uber.org/zap"

	"fouryearplan/backend/config"
	"fouryearplan/backend/internal/dto"
	"fouryearplan/backend/internal/model"
)

// ── AI 模块业务错误 ──

var (
	ErrAIUnavailable = errors.New("ai service is not configured")
	ErrAIBadResponse = errors.New("ai service returned an unusable response")
)

// AIService 生成式模型适配层接口
// 所有方法都可能因上游不可用而失败，调用方必须能在无 AI 的情况下降级
type AIService interface {
	// EnrichPlan 为已生成的计划产出一段建议文本，prefs 为用户偏好（可为 nil）
	EnrichPlan(ctx context.Context, plan *model.Plan, prefs map[string]interface{}) (string, error)
	// SuggestCourses 针对单个学期推荐课程
	SuggestCourses(ctx context.Context, req *dto.AISuggestionsRequest) (*dto.AISuggestionsResponse, error)
}

type aiService struct {
	cfg    *config.AIConfig
	client *http.Client
	sem    chan struct{} // 限制到上游的并发请求数
	logger *zap.Logger
}

// NewAIService 创建 AIService 实例
// 未配置 api_key 时实例仍可创建，但所有调用返回 ErrAIUnavailable
func NewAIService(cfg *config.AIConfig, logger *zap.Logger) AIService {
	return &aiService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		sem:    make(chan struct{}, cfg.MaxConcurrent),
		logger: logger,
	}
}

func (s *aiService) EnrichPlan(ctx context.Context, plan *model.Plan, prefs map[string]interface{}) (string, error) {
	prompt := buildEnrichPrompt(plan, prefs)
	text, err := s.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (s *aiService) SuggestCourses(ctx context.Context, req *dto.AISuggestionsRequest) (*dto.AISuggestionsResponse, error) {
	prompt := buildSuggestPrompt(req)
	text, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// 模型偶尔会在 JSON 前后夹带说明文字或 markdown 围栏，只取最外层花括号
	payload := extractJSON(text)
	if payload == "" {
		return nil, fmt.Errorf("%w: no JSON object in reply", ErrAIBadResponse)
	}

	var resp dto.AISuggestionsResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAIBadResponse, err)
	}
	return &resp, nil
}

// ════════════════════════════════════════════════════════════
// Gemini generateContent 调用
// ════════════════════════════════════════════════════════════

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// generate 向上游发送单条 prompt 并返回首个候选的文本
// 受信号量与超时双重约束；ctx 取消时立即放弃排队
func (s *aiService) generate(ctx context.Context, prompt string) (string, error) {
	if s.cfg.APIKey == "" {
		return "", ErrAIUnavailable
	}

	// 超时在排队前就开始计时，避免并发槽位被占满时无限等待
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	select {
	case s.sem <- struct{}{}:
		defer func() { <-s.sem }()
	case <-ctx.Done():
		return "", ctx.Err()
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("编码请求体失败: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimRight(s.cfg.Endpoint, "/"), s.cfg.Model, s.cfg.APIKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("构建请求失败: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("调用上游失败: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("读取响应失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("上游返回非 200 状态",
			zap.Int("status", resp.StatusCode),
			zap.String("model", s.cfg.Model),
		)
		return "", fmt.Errorf("%w: status %d", ErrAIBadResponse, resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAIBadResponse, err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidates", ErrAIBadResponse)
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// ── prompt 构造 ──

func buildEnrichPrompt(plan *model.Plan, prefs map[string]interface{}) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a UC Berkeley academic advisor. A student majoring in %s (%s) ",
		plan.Major, plan.College)
	fmt.Fprintf(&b, "plans to graduate in %s %d. Their generated four-year plan:\n\n",
		plan.GraduationSemester, plan.GraduationYear)
	for _, sem := range plan.Semesters {
		fmt.Fprintf(&b, "%s %d (%d units):\n", sem.Term, sem.Year, sem.Units)
		for _, c := range sem.Courses {
			fmt.Fprintf(&b, "  - %s %s: %s (%d units)\n", c.Subject, c.Number, c.Title, c.Units)
		}
	}
	if len(plan.Warnings) > 0 {
		b.WriteString("\nUnresolved requirements:\n")
		for _, w := range plan.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}
	if len(prefs) > 0 {
		b.WriteString("\nStudent preferences:\n")
		for _, k := range sortedKeys(prefs) {
			fmt.Fprintf(&b, "  - %s: %v\n", k, prefs[k])
		}
	}
	b.WriteString("\nGive concise advice (3-5 sentences) on workload balance, course ordering, ")
	b.WriteString("and anything the student should double-check with an advisor. Plain text only.")
	return b.String()
}

func buildSuggestPrompt(req *dto.AISuggestionsRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a UC Berkeley academic advisor. A %s major needs course suggestions for %s %d.\n",
		req.Major, req.Semester.Term, req.Semester.Year)
	if len(req.CurrentCourses) > 0 {
		fmt.Fprintf(&b, "Courses already placed in that semester: %s.\n", strings.Join(req.CurrentCourses, ", "))
	}
	b.WriteString(`Reply with ONLY a JSON object in this exact shape, no markdown fences:
{"suggestions":[{"subject":"COMPSCI","number":"61A","title":"...","units":4,"reason":"..."}],"advice":"..."}`)
	return b.String()
}

// sortedKeys 偏好键排序，保证 prompt 确定
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// extractJSON 截取文本中最外层的花括号片段
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return ""
	}
	return text[start : end+1]
}
