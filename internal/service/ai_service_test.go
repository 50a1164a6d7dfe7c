package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"fouryearplan/backend/config"
	"fouryearplan/backend/internal/dto"
)

// fakeGemini 返回固定文本的上游桩
func fakeGemini(t *testing.T, reply string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("期望 POST，实际=%s", r.Method)
		}
		if r.URL.Query().Get("key") == "" {
			t.Error("请求应携带 key 参数")
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": reply}},
				}},
			},
		})
	}))
}

func testAIService(endpoint, apiKey string) AIService {
	return NewAIService(&config.AIConfig{
		APIKey:        apiKey,
		Endpoint:      endpoint,
		Model:         "gemini-1.5-flash",
		Timeout:       5 * time.Second,
		MaxConcurrent: 2,
	}, zap.NewNop())
}

func TestAIService_EnrichPlan(t *testing.T) {
	srv := fakeGemini(t, "  Balance your upper-division load.  ", http.StatusOK)
	defer srv.Close()

	svc := testAIService(srv.URL, "test-key")
	text, err := svc.EnrichPlan(context.Background(), generateTestPlan(t), nil)
	if err != nil {
		t.Fatalf("EnrichPlan 应成功: %v", err)
	}
	if text != "Balance your upper-division load." {
		t.Errorf("应返回去除首尾空白的文本，实际=%q", text)
	}
}

func TestAIService_Unconfigured(t *testing.T) {
	svc := testAIService("http://unused", "")

	_, err := svc.EnrichPlan(context.Background(), generateTestPlan(t), nil)
	if !errors.Is(err, ErrAIUnavailable) {
		t.Errorf("期望 ErrAIUnavailable，实际: %v", err)
	}
}

func TestAIService_UpstreamError(t *testing.T) {
	srv := fakeGemini(t, "ignored", http.StatusTooManyRequests)
	defer srv.Close()

	svc := testAIService(srv.URL, "test-key")
	_, err := svc.EnrichPlan(context.Background(), generateTestPlan(t), nil)
	if !errors.Is(err, ErrAIBadResponse) {
		t.Errorf("期望 ErrAIBadResponse，实际: %v", err)
	}
}

func TestAIService_SuggestCourses_ParsesFencedJSON(t *testing.T) {
	// 模型常把 JSON 包进 markdown 围栏，解析必须能剥掉
	reply := "```json\n{\"suggestions\":[{\"subject\":\"COMPSCI\",\"number\":\"70\",\"title\":\"Discrete Mathematics\",\"units\":4,\"reason\":\"pairs well with 61B\"}],\"advice\":\"Keep the load at 16 units.\"}\n```"
	srv := fakeGemini(t, reply, http.StatusOK)
	defer srv.Close()

	svc := testAIService(srv.URL, "test-key")
	resp, err := svc.SuggestCourses(context.Background(), &dto.AISuggestionsRequest{
		Major:    "Computer Science",
		Semester: dto.SemesterRef{Year: 2025, Term: "Spring"},
	})
	if err != nil {
		t.Fatalf("SuggestCourses 应成功: %v", err)
	}
	if len(resp.Suggestions) != 1 {
		t.Fatalf("期望1条建议，实际=%d", len(resp.Suggestions))
	}
	if resp.Suggestions[0].Subject != "COMPSCI" || resp.Suggestions[0].Number != "70" {
		t.Errorf("建议解析不正确: %+v", resp.Suggestions[0])
	}
	if resp.Advice == "" {
		t.Error("advice 不应为空")
	}
}

func TestAIService_SuggestCourses_NoJSONInReply(t *testing.T) {
	srv := fakeGemini(t, "Sorry, I cannot help with that.", http.StatusOK)
	defer srv.Close()

	svc := testAIService(srv.URL, "test-key")
	_, err := svc.SuggestCourses(context.Background(), &dto.AISuggestionsRequest{
		Major:    "Computer Science",
		Semester: dto.SemesterRef{Year: 2025, Term: "Spring"},
	})
	if !errors.Is(err, ErrAIBadResponse) {
		t.Errorf("期望 ErrAIBadResponse，实际: %v", err)
	}
}

func TestAIService_QueuedCallersRespectTimeout(t *testing.T) {
	// 并发槽位占满时，排队中的调用也要受自身超时约束，
	// 不能等到所有前序请求完成后才开始计时
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(400 * time.Millisecond)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "slow reply"}},
				}},
			},
		})
	}))
	defer srv.Close()

	svc := NewAIService(&config.AIConfig{
		APIKey:        "test-key",
		Endpoint:      srv.URL,
		Model:         "gemini-1.5-flash",
		Timeout:       150 * time.Millisecond,
		MaxConcurrent: 1,
	}, zap.NewNop())

	plan := generateTestPlan(t)
	const callers = 4
	elapsed := make(chan time.Duration, callers)
	for i := 0; i < callers; i++ {
		go func() {
			start := time.Now()
			svc.EnrichPlan(context.Background(), plan, nil)
			elapsed <- time.Since(start)
		}()
	}

	for i := 0; i < callers; i++ {
		if d := <-elapsed; d > time.Second {
			t.Errorf("排队调用耗时 %v，超时未在排队阶段生效", d)
		}
	}
}

func TestAIService_ContextCancelled(t *testing.T) {
	srv := fakeGemini(t, "never delivered", http.StatusOK)
	defer srv.Close()

	svc := testAIService(srv.URL, "test-key")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.EnrichPlan(ctx, generateTestPlan(t), nil); err == nil {
		t.Error("已取消的 ctx 应使调用失败")
	}
}
