package catalog

var blind75Seed = []Problem{
	// Array
	p("two-sum", "Two Sum", Easy, "Array", "Hash Table"),
	p("best-time-to-buy-and-sell-stock", "Best Time to Buy and Sell Stock", Easy, "Array", "Sliding Window"),
	p("contains-duplicate", "Contains Duplicate", Easy, "Array", "Hash Table"),
	p("product-of-array-except-self", "Product of Array Except Self", Medium, "Array", "Prefix Sum"),
	p("maximum-subarray", "Maximum Subarray", Medium, "Array", "Dynamic Programming"),
	p("maximum-product-subarray", "Maximum Product Subarray", Medium, "Array", "Dynamic Programming"),
	p("find-minimum-in-rotated-sorted-array", "Find Minimum in Rotated Sorted Array", Medium, "Array", "Binary Search"),
	p("search-in-rotated-sorted-array", "Search in Rotated Sorted Array", Medium, "Array", "Binary Search"),
	p("3sum", "3Sum", Medium, "Array", "Two Pointers"),
	p("container-with-most-water", "Container With Most Water", Medium, "Array", "Two Pointers"),

	// Binary
	p("sum-of-two-integers", "Sum of Two Integers", Medium, "Bit Manipulation"),
	p("number-of-1-bits", "Number of 1 Bits", Easy, "Bit Manipulation"),
	p("counting-bits", "Counting Bits", Easy, "Bit Manipulation", "Dynamic Programming"),
	p("missing-number", "Missing Number", Easy, "Bit Manipulation", "Array"),
	p("reverse-bits", "Reverse Bits", Easy, "Bit Manipulation"),

	// Dynamic Programming
	p("climbing-stairs", "Climbing Stairs", Easy, "Dynamic Programming"),
	p("coin-change", "Coin Change", Medium, "Dynamic Programming"),
	p("longest-increasing-subsequence", "Longest Increasing Subsequence", Medium, "Dynamic Programming", "Binary Search"),
	p("longest-common-subsequence", "Longest Common Subsequence", Medium, "Dynamic Programming", "String"),
	p("word-break", "Word Break", Medium, "Dynamic Programming", "String"),
	p("combination-sum-iv", "Combination Sum IV", Medium, "Dynamic Programming"),
	p("house-robber", "House Robber", Medium, "Dynamic Programming"),
	p("house-robber-ii", "House Robber II", Medium, "Dynamic Programming"),
	p("decode-ways", "Decode Ways", Medium, "Dynamic Programming", "String"),
	p("unique-paths", "Unique Paths", Medium, "Dynamic Programming"),
	p("jump-game", "Jump Game", Medium, "Dynamic Programming", "Greedy"),

	// Graph
	p("clone-graph", "Clone Graph", Medium, "Graph"),
	p("course-schedule", "Course Schedule", Medium, "Graph", "Topological Sort"),
	p("pacific-atlantic-water-flow", "Pacific Atlantic Water Flow", Medium, "Graph", "Matrix"),
	p("number-of-islands", "Number of Islands", Medium, "Graph", "Matrix"),
	p("longest-consecutive-sequence", "Longest Consecutive Sequence", Medium, "Graph", "Hash Table"),
	p("alien-dictionary", "Alien Dictionary", Hard, "Graph", "Topological Sort"),
	p("graph-valid-tree", "Graph Valid Tree", Medium, "Graph", "Union Find"),
	p("number-of-connected-components-in-an-undirected-graph", "Number of Connected Components in an Undirected Graph", Medium, "Graph", "Union Find"),

	// Interval
	p("insert-interval", "Insert Interval", Medium, "Interval"),
	p("merge-intervals", "Merge Intervals", Medium, "Interval", "Sorting"),
	p("non-overlapping-intervals", "Non-overlapping Intervals", Medium, "Interval", "Greedy"),
	p("meeting-rooms", "Meeting Rooms", Easy, "Interval", "Sorting"),
	p("meeting-rooms-ii", "Meeting Rooms II", Medium, "Interval", "Heap"),

	// Linked List
	p("reverse-linked-list", "Reverse Linked List", Easy, "Linked List"),
	p("linked-list-cycle", "Linked List Cycle", Easy, "Linked List", "Two Pointers"),
	p("merge-two-sorted-lists", "Merge Two Sorted Lists", Easy, "Linked List"),
	p("merge-k-sorted-lists", "Merge k Sorted Lists", Hard, "Linked List", "Heap"),
	p("remove-nth-node-from-end-of-list", "Remove Nth Node From End of List", Medium, "Linked List", "Two Pointers"),
	p("reorder-list", "Reorder List", Medium, "Linked List"),

	// Matrix
	p("set-matrix-zeroes", "Set Matrix Zeroes", Medium, "Matrix"),
	p("spiral-matrix", "Spiral Matrix", Medium, "Matrix"),
	p("rotate-image", "Rotate Image", Medium, "Matrix"),
	p("word-search", "Word Search", Medium, "Matrix", "Backtracking"),

	// String
	p("longest-substring-without-repeating-characters", "Longest Substring Without Repeating Characters", Medium, "String", "Sliding Window"),
	p("longest-repeating-character-replacement", "Longest Repeating Character Replacement", Medium, "String", "Sliding Window"),
	p("minimum-window-substring", "Minimum Window Substring", Hard, "String", "Sliding Window"),
	p("valid-anagram", "Valid Anagram", Easy, "String", "Hash Table"),
	p("group-anagrams", "Group Anagrams", Medium, "String", "Hash Table"),
	p("valid-parentheses", "Valid Parentheses", Easy, "String", "Stack"),
	p("valid-palindrome", "Valid Palindrome", Easy, "String", "Two Pointers"),
	p("longest-palindromic-substring", "Longest Palindromic Substring", Medium, "String", "Dynamic Programming"),
	p("palindromic-substrings", "Palindromic Substrings", Medium, "String", "Dynamic Programming"),
	p("encode-and-decode-strings", "Encode and Decode Strings", Medium, "String", "Design"),

	// Tree
	p("maximum-depth-of-binary-tree", "Maximum Depth of Binary Tree", Easy, "Tree"),
	p("same-tree", "Same Tree", Easy, "Tree"),
	p("invert-binary-tree", "Invert Binary Tree", Easy, "Tree"),
	p("binary-tree-maximum-path-sum", "Binary Tree Maximum Path Sum", Hard, "Tree"),
	p("binary-tree-level-order-traversal", "Binary Tree Level Order Traversal", Medium, "Tree", "Breadth-First Search"),
	p("serialize-and-deserialize-binary-tree", "Serialize and Deserialize Binary Tree", Hard, "Tree", "Design"),
	p("subtree-of-another-tree", "Subtree of Another Tree", Easy, "Tree"),
	p("construct-binary-tree-from-preorder-and-inorder-traversal", "Construct Binary Tree from Preorder and Inorder Traversal", Medium, "Tree"),
	p("validate-binary-search-tree", "Validate Binary Search Tree", Medium, "Tree", "Binary Search Tree"),
	p("kth-smallest-element-in-a-bst", "Kth Smallest Element in a BST", Medium, "Tree", "Binary Search Tree"),
	p("lowest-common-ancestor-of-a-binary-search-tree", "Lowest Common Ancestor of a Binary Search Tree", Medium, "Tree", "Binary Search Tree"),
	p("implement-trie-prefix-tree", "Implement Trie (Prefix Tree)", Medium, "Tree", "Trie"),
	p("design-add-and-search-words-data-structure", "Design Add and Search Words Data Structure", Medium, "Tree", "Trie"),
	p("word-search-ii", "Word Search II", Hard, "Tree", "Trie", "Backtracking"),

	// Heap
	p("top-k-frequent-elements", "Top K Frequent Elements", Medium, "Heap", "Hash Table"),
	p("find-median-from-data-stream", "Find Median from Data Stream", Hard, "Heap", "Design"),
}
