package provider

import "context"

// Result 一次生成尝试的结果，Err 记录被降级吞掉的原因
type Result[T any] struct {
	Value    T
	Provider Name
	Err      error
}

// Degraded 是否使用了降级值
func (r Result[T]) Degraded() bool {
	return r.Err != nil
}

// Attempt 执行一次在线调用，失败或空结果都替换为 fallback 的值
// 空结果与调用失败不做区分，都会降级
func Attempt[T any](
	ctx context.Context,
	name Name,
	call func(ctx context.Context) (T, error),
	fallbackName Name,
	fallback func() T,
) Result[T] {
	v, err := call(ctx)
	if err == nil {
		return Result[T]{Value: v, Provider: name}
	}
	return Result[T]{Value: fallback(), Provider: fallbackName, Err: err}
}

// AttemptText 文本生成的常用形式
func AttemptText(
	ctx context.Context,
	gen TextGenerator,
	systemPrompt, userPrompt string,
	opts TextOptions,
	fallbackName Name,
	fallback func() string,
) Result[string] {
	if gen == nil {
		return Result[string]{Value: fallback(), Provider: Mock}
	}
	return Attempt(ctx, gen.Name(), func(ctx context.Context) (string, error) {
		return gen.GenerateText(ctx, systemPrompt, userPrompt, opts)
	}, fallbackName, fallback)
}
