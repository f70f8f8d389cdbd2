package prompt

// Template placeholders.
const (
	PlaceholderInstruction      = "{{instruction}}"
	PlaceholderTools            = "{{tools}}"
	PlaceholderToolNames        = "{{tool_names}}"
	PlaceholderHistoricMessages = "{{historic_messages}}"
	PlaceholderAgentScratchpad  = "{{agent_scratchpad}}"
	PlaceholderQuery            = "{{query}}"
)

// DefaultCompletionTemplate is a ReAct template for completion models that
// uses every placeholder. `config init` seeds new configurations with it.
const DefaultCompletionTemplate = `Respond to the human as helpfully and accurately as possible.

{{instruction}}

You have access to the following tools:

{{tools}}

To use a tool, reply with a JSON blob holding an "action" key (the tool name) and an "action_input" key (the tool input).
Valid "action" values: "Final Answer" or {{tool_names}}

Provide only ONE action per blob, as shown:

` + "```" + `
{
  "action": $TOOL_NAME,
  "action_input": $ACTION_INPUT
}
` + "```" + `

Follow this format:

Question: the input question to answer
Thought: consider previous and subsequent steps
Action:
` + "```" + `
$JSON_BLOB
` + "```" + `
Observation: the action result
... (Thought/Action/Observation may repeat N times)
Thought: I know what to respond
Action:
` + "```" + `
{
  "action": "Final Answer",
  "action_input": "Final response to human"
}
` + "```" + `

Begin! Always reply with a valid JSON blob of a single action. Use tools if necessary. Respond directly if appropriate.

{{historic_messages}}
{{query}}
{{agent_scratchpad}}
Thought:`
